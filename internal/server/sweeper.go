package server

import (
	"context"
	"fmt"
	"time"

	"github.com/darwincel7/taller-sub001/internal/alerts"
)

// OverdueSweep periodically re-scans open orders and reports newly overdue
// ones per branch: an activity entry the first time an id is sighted, plus
// a log line with counts. Missing a tick only delays the report, so errors
// just wait for the next round.
func (srv *Server) OverdueSweep(ctx context.Context) {
	interval := srv.config.SweepInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.sweepOnce(ctx, seen, time.Now())
		}
	}
}

func (srv *Server) sweepOnce(ctx context.Context, seen map[string]bool, now time.Time) {
	orders, err := srv.storage.ListOpenOrders(ctx)
	if err != nil {
		srv.deps.Logger.Errorf("overdue sweep: %v", err)
		return
	}

	branches := make(map[string]bool)
	for _, o := range orders {
		branches[o.CurrentBranch] = true
	}

	for branch := range branches {
		overdue := alerts.Overdue(orders, branch, now)

		var fresh []string
		for _, o := range overdue {
			if !seen[o.ID] {
				seen[o.ID] = true
				fresh = append(fresh, o.ID)
			}
		}

		for _, id := range fresh {
			// user id 0 marks a system entry
			if err := srv.storage.RecordActivity(ctx, 0, "order_overdue", fmt.Sprintf("order %s at %s", id, branch)); err != nil {
				srv.deps.Logger.Errorf("record overdue activity: %v", err)
			}
		}

		if len(fresh) > 0 {
			srv.deps.Logger.Infow("overdue orders",
				"branch", branch,
				"total", len(overdue),
				"new", fresh,
			)
		}
	}
}
