package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	portssvc "github.com/SscSPs/pto_ledger_service/internal/core/ports/services"
	"github.com/SscSPs/pto_ledger_service/internal/dto"
)

// Trigger names double as seen-store bucket names.
const (
	TriggerPTORequests = "pto-requests"
	TriggerApprovals   = "approvals"
)

// seenFilter is the caller-side memory of emitted item IDs.
type seenFilter interface {
	Unseen(trigger string, ids []string) ([]string, error)
	MarkSeen(trigger, id string) error
}

type pollOptions struct {
	Trigger      string
	RequestType  string
	StatusFilter string
}

// poll runs one trigger and writes each item not seen before as one JSON line to out.
// An item is marked seen only after its line was written, so a failed write leaves it
// for the next poll. It returns the number of items written.
func poll(ctx context.Context, poller portssvc.ChangePollerSvc, seen seenFilter, opts pollOptions, out io.Writer) (int, error) {
	ids, items, err := fetch(ctx, poller, opts)
	if err != nil {
		return 0, err
	}

	fresh, err := seen.Unseen(opts.Trigger, ids)
	if err != nil {
		return 0, err
	}
	emit := make(map[string]bool, len(fresh))
	for _, id := range fresh {
		emit[id] = true
	}

	enc := json.NewEncoder(out)
	written := 0
	for i, id := range ids {
		if !emit[id] {
			continue
		}
		// an ID listed twice in one poll is emitted once
		delete(emit, id)
		if err := enc.Encode(items[i]); err != nil {
			return written, fmt.Errorf("failed to write item %s: %w", id, err)
		}
		written++
		if err := seen.MarkSeen(opts.Trigger, id); err != nil {
			return written, err
		}
	}
	return written, nil
}

// fetch returns the trigger's items together with their record IDs, in the poller's order.
func fetch(ctx context.Context, poller portssvc.ChangePollerSvc, opts pollOptions) ([]string, []any, error) {
	switch opts.Trigger {
	case TriggerPTORequests:
		reqs, err := poller.ListSubmittedRequests(ctx, dto.PollRequestsParams{RequestType: opts.RequestType})
		if err != nil {
			return nil, nil, err
		}
		items := dto.ToPTORequestItems(reqs)
		ids := make([]string, len(items))
		out := make([]any, len(items))
		for i := range items {
			ids[i] = items[i].ID
			out[i] = items[i]
		}
		return ids, out, nil

	case TriggerApprovals:
		decisions, err := poller.ListApprovalDecisions(ctx, dto.PollApprovalsParams{StatusFilter: opts.StatusFilter})
		if err != nil {
			return nil, nil, err
		}
		items := dto.ToApprovalDecisionItems(decisions)
		ids := make([]string, len(items))
		out := make([]any, len(items))
		for i := range items {
			ids[i] = items[i].ID
			out[i] = items[i]
		}
		return ids, out, nil

	default:
		return nil, nil, fmt.Errorf("unknown trigger %q (want %s or %s)", opts.Trigger, TriggerPTORequests, TriggerApprovals)
	}
}
