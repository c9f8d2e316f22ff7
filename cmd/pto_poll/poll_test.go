package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/memory"
	seenstore "github.com/SscSPs/pto_ledger_service/internal/adapters/seenstore/bolt"
	"github.com/SscSPs/pto_ledger_service/internal/core/services"
	"github.com/SscSPs/pto_ledger_service/internal/models"
	"github.com/SscSPs/pto_ledger_service/internal/repositories/recordstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()
	var items []map[string]any
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		var item map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &item))
		items = append(items, item)
	}
	return items
}

// failingWriter accepts the first ok writes and then fails.
type failingWriter struct {
	ok  int
	out bytes.Buffer
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errors.New("broken pipe")
	}
	w.ok--
	return w.out.Write(p)
}

func TestPoll_FailedWriteKeepsItemForNextPoll(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Seed(models.TablePTORequests, models.Record{ID: "recR1", Fields: models.Fields{
		models.FieldRequestStatus: "Submitted", models.FieldRequestType: "Vacation", models.FieldSubmittedDate: "2025-01-02",
	}}))
	require.NoError(t, store.Seed(models.TablePTORequests, models.Record{ID: "recR2", Fields: models.Fields{
		models.FieldRequestStatus: "Submitted", models.FieldRequestType: "Sick", models.FieldSubmittedDate: "2025-01-01",
	}}))

	seen, err := seenstore.Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	defer seen.Close()

	repos := recordstore.NewRepositoryProvider(store)
	poller := services.NewPollerService(repos.RequestRepo, repos.ApprovalRepo)
	opts := pollOptions{Trigger: TriggerPTORequests}

	broken := &failingWriter{ok: 1}
	n, err := poll(ctx, poller, seen, opts, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recR2")
	assert.Equal(t, 1, n)

	delivered, err := seen.Seen(TriggerPTORequests, "recR1")
	require.NoError(t, err)
	assert.True(t, delivered)
	lost, err := seen.Seen(TriggerPTORequests, "recR2")
	require.NoError(t, err)
	assert.False(t, lost, "an item whose write failed is not marked seen")

	var out bytes.Buffer
	n, err = poll(ctx, poller, seen, opts, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	items := decodeLines(t, &out)
	require.Len(t, items, 1)
	assert.Equal(t, "recR2", items[0]["id"])
}

func TestPoll_EmitsOnlyUnseenItems(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Seed(models.TablePTORequests, models.Record{ID: "recR1", Fields: models.Fields{
		models.FieldRequestStatus: "Submitted", models.FieldRequestType: "Vacation", models.FieldSubmittedDate: "2025-01-01",
	}}))

	seen, err := seenstore.Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	defer seen.Close()

	repos := recordstore.NewRepositoryProvider(store)
	poller := services.NewPollerService(repos.RequestRepo, repos.ApprovalRepo)
	opts := pollOptions{Trigger: TriggerPTORequests}

	var out bytes.Buffer
	n, err := poll(ctx, poller, seen, opts, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	items := decodeLines(t, &out)
	require.Len(t, items, 1)
	assert.Equal(t, "recR1", items[0]["id"])

	out.Reset()
	n, err = poll(ctx, poller, seen, opts, &out)
	require.NoError(t, err)
	assert.Zero(t, n, "second poll repeats the same item, which was already emitted")
	assert.Empty(t, out.String())

	require.NoError(t, store.Seed(models.TablePTORequests, models.Record{ID: "recR2", Fields: models.Fields{
		models.FieldRequestStatus: "Submitted", models.FieldRequestType: "Sick", models.FieldSubmittedDate: "2025-01-02",
	}}))
	out.Reset()
	n, err = poll(ctx, poller, seen, opts, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	items = decodeLines(t, &out)
	require.Len(t, items, 1)
	assert.Equal(t, "recR2", items[0]["id"])
}

func TestPoll_ApprovalsAndUnknownTrigger(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Seed(models.TableApprovals, models.Record{ID: "recA1", Fields: models.Fields{
		models.FieldApprovalStatus: "Approved", models.FieldDecisionDate: "2025-01-04",
	}}))
	require.NoError(t, store.Seed(models.TableApprovals, models.Record{ID: "recA2", Fields: models.Fields{
		models.FieldApprovalStatus: "Pending",
	}}))

	seen, err := seenstore.Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	defer seen.Close()

	repos := recordstore.NewRepositoryProvider(store)
	poller := services.NewPollerService(repos.RequestRepo, repos.ApprovalRepo)

	var out bytes.Buffer
	n, err := poll(ctx, poller, seen, pollOptions{Trigger: TriggerApprovals}, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	items := decodeLines(t, &out)
	require.Len(t, items, 1)
	assert.Equal(t, "recA1", items[0]["id"])
	assert.Equal(t, "Approved", items[0]["approvalStatus"])

	_, err = poll(ctx, poller, seen, pollOptions{Trigger: "employees"}, &out)
	assert.Error(t, err)
}
