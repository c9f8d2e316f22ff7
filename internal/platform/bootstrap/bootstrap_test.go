package bootstrap_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/pto_ledger_service/internal/adapters/events/kafka"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/events/logevents"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/airtable"
	"github.com/SscSPs/pto_ledger_service/internal/adapters/recordstore/memory"
	"github.com/SscSPs/pto_ledger_service/internal/platform/bootstrap"
	"github.com/SscSPs/pto_ledger_service/internal/platform/config"
	"github.com/SscSPs/pto_ledger_service/internal/platform/locking"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestOpenRecordStore(t *testing.T) {
	ctx := context.Background()

	store, cleanup, err := bootstrap.OpenRecordStore(ctx, &config.Config{RecordStore: config.StoreMemory}, quiet)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &memory.Store{}, store)

	store, cleanup, err = bootstrap.OpenRecordStore(ctx, &config.Config{
		RecordStore:      config.StoreAirtable,
		AirtableAPIToken: "pat123",
		AirtableBaseID:   "appBASE",
	}, quiet)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &airtable.Client{}, store)

	_, cleanup, err = bootstrap.OpenRecordStore(ctx, &config.Config{RecordStore: "sheets"}, quiet)
	assert.Error(t, err)
	assert.NotNil(t, cleanup)
}

func TestNewLocker(t *testing.T) {
	ctx := context.Background()

	locker, cleanup, err := bootstrap.NewLocker(ctx, &config.Config{}, quiet)
	require.NoError(t, err)
	cleanup()
	assert.IsType(t, &locking.LocalLocker{}, locker)

	mr := miniredis.RunT(t)
	locker, cleanup, err = bootstrap.NewLocker(ctx, &config.Config{RedisURL: "redis://" + mr.Addr()}, quiet)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &locking.RedisLocker{}, locker)

	lease, err := locker.Lock(ctx, locking.BalanceKey("recEMP1"))
	require.NoError(t, err)
	assert.True(t, mr.Exists(locking.BalanceKey("recEMP1")))
	lease.Unlock()

	_, _, err = bootstrap.NewLocker(ctx, &config.Config{RedisURL: "not a url"}, quiet)
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	pub := bootstrap.NewPublisher(&config.Config{}, quiet)
	assert.IsType(t, &logevents.Publisher{}, pub)
	require.NoError(t, pub.Close())

	pub = bootstrap.NewPublisher(&config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"}, quiet)
	assert.IsType(t, &kafka.Publisher{}, pub)
	require.NoError(t, pub.Close())
}

func TestNewLogger(t *testing.T) {
	assert.True(t, bootstrap.NewLogger(io.Discard, "debug").Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, bootstrap.NewLogger(io.Discard, "warn").Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, bootstrap.NewLogger(io.Discard, "").Enabled(context.Background(), slog.LevelInfo))
}
