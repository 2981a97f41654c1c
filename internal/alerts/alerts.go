// Package alerts derives per-viewer actionable alerts and overdue lists
// from order snapshots. Everything here is pure: the caller fetches a
// self-consistent batch of rows and these functions only classify it.
package alerts

import (
	"sort"
	"time"

	"github.com/darwincel7/taller-sub001/internal/model"
)

// Viewer is the identity an alert batch is computed for.
type Viewer struct {
	UserID int
	Role   model.Role
	Branch string
}

type Alert struct {
	Order model.Order     `json:"order"`
	Type  model.AlertType `json:"alert_type"`
}

type rule struct {
	alertType model.AlertType
	match     func(o model.Order, v Viewer) bool
}

// The order of this list is load-bearing: personal handoffs outrank
// branch-wide operational alerts, which outrank everything else. The first
// matching rule decides which banner the viewer sees when an order carries
// several pending conditions at once.
var rules = []rule{
	{model.AlertAssignmentRequest, func(o model.Order, v Viewer) bool {
		// Only the named user sees a direct handoff, admins included.
		return o.PendingAssignmentTo != nil && *o.PendingAssignmentTo == v.UserID
	}},
	{model.AlertTechMessage, func(o model.Order, v Viewer) bool {
		if o.TechMessage == nil || !o.TechMessage.Pending {
			return false
		}
		return v.Role == model.RoleAdmin || isAssignee(o, v)
	}},
	{model.AlertApprovedAck, func(o model.Order, v Viewer) bool {
		return o.ApprovalAckPending && isAssignee(o, v)
	}},
	{model.AlertTransfer, func(o model.Order, v Viewer) bool {
		if o.TransferStatus == nil || *o.TransferStatus != model.TransferPending {
			return false
		}
		if v.Role == model.RoleAdmin {
			return true
		}
		return v.Role != model.RoleTechnician && o.TransferTarget == v.Branch
	}},
	{model.AlertPoints, func(o model.Order, v Viewer) bool {
		return subPending(o.PointRequest) && (v.Role == model.RoleAdmin || v.Role == model.RoleMonitor)
	}},
	{model.AlertReturnRequest, func(o model.Order, v Viewer) bool {
		return subPending(o.ReturnRequest) && v.Role != model.RoleTechnician
	}},
	{model.AlertExternalRequest, func(o model.Order, v Viewer) bool {
		return subPending(o.ExternalRepair) && v.Role != model.RoleTechnician
	}},
	{model.AlertValidate, func(o model.Order, v Viewer) bool {
		return !o.IsValidated && v.Role != model.RoleTechnician
	}},
	{model.AlertBudget, func(o model.Order, v Viewer) bool {
		return o.Status == model.WaitingApproval && v.Role != model.RoleTechnician
	}},
}

func isAssignee(o model.Order, v Viewer) bool {
	return o.AssignedTo != nil && *o.AssignedTo == v.UserID
}

func subPending(r *model.SubRequest) bool {
	return r != nil && r.Status == model.RequestPending
}

// Compute classifies a batch of candidate orders for one viewer. Candidates
// come from a broad upstream OR query and are re-validated here; a row that
// matches no rule is a fetch/filter race and comes back in unmatched so the
// caller can log and drop it instead of showing a generic banner.
func Compute(candidates []model.Order, viewer Viewer) (alerts []Alert, unmatched []string) {
	for _, o := range candidates {
		alertType, ok := classify(o, viewer)
		if !ok {
			if alertType == model.AlertGeneric {
				unmatched = append(unmatched, o.ID)
			}
			continue
		}
		alerts = append(alerts, Alert{Order: o, Type: alertType})
	}
	return alerts, unmatched
}

func classify(o model.Order, v Viewer) (model.AlertType, bool) {
	for _, r := range rules {
		if r.match(o, v) {
			if !passesSafetyFilter(o, v, r.alertType) {
				return r.alertType, false
			}
			return r.alertType, true
		}
	}
	return model.AlertGeneric, false
}

// passesSafetyFilter re-checks the two visibility rules that must hold even
// if the rule list above is ever reordered: technicians never see budget
// alerts, and tech messages stay between the assignee and admins.
func passesSafetyFilter(o model.Order, v Viewer, t model.AlertType) bool {
	if t == model.AlertBudget && v.Role == model.RoleTechnician {
		return false
	}
	if t == model.AlertTechMessage && v.Role != model.RoleAdmin && !isAssignee(o, v) {
		return false
	}
	return true
}

// Overdue returns the branch's active orders whose deadline has passed,
// most overdue first. Terminal orders are never overdue.
func Overdue(orders []model.Order, branch string, now time.Time) []model.Order {
	var out []model.Order
	for _, o := range orders {
		if o.CurrentBranch != branch {
			continue
		}
		if o.Status.IsTerminal() {
			continue
		}
		if o.Deadline.Before(now) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Deadline.Before(out[j].Deadline)
	})
	return out
}
