package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/darwincel7/taller-sub001/internal/alerts"
	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/darwincel7/taller-sub001/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) IntakeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role == model.RoleTechnician {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Branch == "" {
		req.Branch = user.Branch
	}
	if req.Customer == "" || req.DeviceModel == "" || !utils.IsValidBranchCode(req.Branch) {
		http.Error(w, "invalid intake data", http.StatusUnprocessableEntity)
		return
	}
	if req.Deadline.IsZero() {
		req.Deadline = time.Now().Add(72 * time.Hour)
	}
	// inspected at the counter unless the intake says otherwise
	validated := true
	if req.Validated != nil {
		validated = *req.Validated
	}

	order := model.Order{
		ID:            uuid.NewString(),
		Customer:      req.Customer,
		DeviceModel:   req.DeviceModel,
		Status:        model.Pending,
		CurrentBranch: req.Branch,
		OriginBranch:  req.Branch,
		IsValidated:   validated,
		EstimatedCost: req.EstimatedCost,
		Deadline:      req.Deadline,
	}

	order, err := s.storage.CreateOrder(r.Context(), order)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "order_intake", fmt.Sprintf("order #%d at %s", order.ReadableID, order.CurrentBranch))
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	branch := r.URL.Query().Get("branch")
	if branch == "" {
		branch = user.Branch
	}

	orders, err := s.storage.ListBranchOrders(r.Context(), branch)
	if err != nil {
		http.Error(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	order, err := s.storage.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (s *Server) ClaimHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role != model.RoleTechnician {
		http.Error(w, "only technicians claim orders", http.StatusForbidden)
		return
	}

	orderID := chi.URLParam(r, "id")
	err := s.storage.ClaimOrder(r.Context(), orderID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, errs.ErrAlreadyAssigned):
			http.Error(w, "order already assigned", http.StatusConflict)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	s.recordActivity(r, user, "order_claim", orderID)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) AssignHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role == model.RoleTechnician {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TechnicianID == 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.RequestAssignment(r.Context(), orderID, req.TechnicianID); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "order_assign_request", fmt.Sprintf("%s -> tech %d", orderID, req.TechnicianID))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) AcceptHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.AcceptAssignment(r.Context(), orderID, user.ID); err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, errs.ErrRequestNotPending):
			http.Error(w, "no pending handoff for this user", http.StatusConflict)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	s.recordActivity(r, user, "order_assign_accept", orderID)
	w.WriteHeader(http.StatusOK)
}

var validStatuses = map[model.OrderStatus]bool{
	model.Pending:         true,
	model.Diagnosis:       true,
	model.WaitingApproval: true,
	model.InRepair:        true,
	model.Repaired:        true,
	model.Returned:        true,
	model.Canceled:        true,
	model.External:        true,
}

func (s *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if !validStatuses[req.Status] {
		http.Error(w, "unknown status", http.StatusUnprocessableEntity)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.UpdateOrderStatus(r.Context(), orderID, req.Status, req.FinalPrice); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "order_status", fmt.Sprintf("%s -> %s", orderID, req.Status))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role == model.RoleTechnician {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.ValidateOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "order_validate", orderID)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) AckApprovalHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.AckApproval(r.Context(), orderID, user.ID); err != nil {
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			http.Error(w, "order not found", http.StatusNotFound)
		case errors.Is(err, errs.ErrNotAssignee):
			http.Error(w, "order assigned to another technician", http.StatusConflict)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) TechMessageHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req model.TechMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.SetTechMessage(r.Context(), orderID, req.Message); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "tech_message", orderID)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) ResolveTechMessageHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if err := s.storage.ResolveTechMessage(r.Context(), orderID); err != nil {
		if errors.Is(err, errs.ErrRequestNotPending) {
			http.Error(w, "no pending message", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) ResolveRequestHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role == model.RoleTechnician {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	kind := chi.URLParam(r, "kind")
	// point requests are a monitor/admin concern, matching their alert rule
	if kind == "point" && user.Role != model.RoleAdmin && user.Role != model.RoleMonitor {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	orderID := chi.URLParam(r, "id")
	if err := s.storage.ResolveSubRequest(r.Context(), orderID, kind, req.Approve); err != nil {
		if errors.Is(err, errs.ErrRequestNotPending) {
			http.Error(w, "request is not pending", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	verdict := "rejected"
	if req.Approve {
		verdict = "approved"
	}
	s.recordActivity(r, user, "request_"+verdict, fmt.Sprintf("%s %s", kind, orderID))
	w.WriteHeader(http.StatusOK)
}

func (s *Server) AlertsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Branch == "" {
		s.deps.Logger.Warnf("alerts: %v (user %d)", errs.ErrInvalidViewer, user.ID)
		http.Error(w, "viewer branch missing", http.StatusBadRequest)
		return
	}

	candidates, err := s.storage.GetAlertCandidates(r.Context())
	if err != nil {
		http.Error(w, "failed to get alerts", http.StatusInternalServerError)
		return
	}

	viewer := alerts.Viewer{UserID: user.ID, Role: user.Role, Branch: user.Branch}
	list, unmatched := alerts.Compute(candidates, viewer)
	if len(unmatched) > 0 {
		// a candidate matching no refined rule means the row changed
		// between fetch and filter, or the broad query drifted
		s.deps.Logger.Warnf("alerts: dropped %d unmatched candidates: %v", len(unmatched), unmatched)
	}

	if len(list) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) OverdueHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	branch := r.URL.Query().Get("branch")
	if branch == "" {
		branch = user.Branch
	}
	if branch == "" {
		http.Error(w, "branch required", http.StatusBadRequest)
		return
	}

	orders, err := s.storage.ListBranchOrders(r.Context(), branch)
	if err != nil {
		http.Error(w, "failed to get orders", http.StatusInternalServerError)
		return
	}

	overdue := alerts.Overdue(orders, branch, time.Now())
	if len(overdue) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, overdue)
}

// recordActivity appends to the audit trail; failures are logged, never
// surfaced, so the main mutation's response stays intact.
func (s *Server) recordActivity(r *http.Request, user model.User, action, details string) {
	if err := s.storage.RecordActivity(r.Context(), user.ID, action, details); err != nil {
		s.deps.Logger.Errorf("record activity %s: %v", action, err)
	}
}
