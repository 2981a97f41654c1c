// Package cash holds the register arithmetic: per-branch totals over a
// flattened payment list and the reconciliation figures a closing is built
// from. Refund amounts arrive signed, so the method buckets and the total
// already carry them; Refunds is a separate informational rollup and is
// never subtracted a second time.
package cash

import (
	"math"

	"github.com/darwincel7/taller-sub001/internal/model"
)

type BranchTotals struct {
	Cash     float64 `json:"cash"`
	Transfer float64 `json:"transfer"`
	Card     float64 `json:"card"`
	Credit   float64 `json:"credit"`
	Refunds  float64 `json:"refunds"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type ReconcileTotals struct {
	Cash  float64 `json:"cash"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// AggregateByBranch groups payments by order branch and sums them into
// method buckets. Every input row lands in exactly one branch entry.
func AggregateByBranch(payments []model.FlatPayment) map[string]BranchTotals {
	out := make(map[string]BranchTotals)
	for _, p := range payments {
		t := out[p.OrderBranch]
		t.Total += p.Amount
		t.Count++
		switch p.Method {
		case model.MethodCash:
			t.Cash += p.Amount
		case model.MethodTransfer:
			t.Transfer += p.Amount
		case model.MethodCard:
			t.Card += p.Amount
		case model.MethodCredit:
			t.Credit += p.Amount
		}
		if p.Amount < 0 || p.IsRefund {
			t.Refunds += math.Abs(p.Amount)
		}
		out[p.OrderBranch] = t
	}
	return out
}

// Reconcile restricts payments to one branch and a user-curated selection
// and sums the figures a closing compares against the counted drawer.
func Reconcile(payments []model.FlatPayment, branch string, selected map[string]bool) ReconcileTotals {
	var t ReconcileTotals
	for _, p := range payments {
		if p.OrderBranch != branch || !selected[p.PaymentID] {
			continue
		}
		t.Total += p.Amount
		t.Count++
		if p.Method == model.MethodCash {
			t.Cash += p.Amount
		}
	}
	return t
}

// Difference is the signed drawer deviation recorded on a closing.
func Difference(actual, systemCash float64) float64 {
	return actual - systemCash
}
