package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/darwincel7/taller-sub001/internal/cash"
	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var validMethods = map[model.PaymentMethod]bool{
	model.MethodCash:     true,
	model.MethodTransfer: true,
	model.MethodCard:     true,
	model.MethodCredit:   true,
}

func (s *Server) AddPaymentHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role == model.RoleTechnician {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Amount == 0 || !validMethods[req.Method] {
		http.Error(w, "invalid payment", http.StatusUnprocessableEntity)
		return
	}

	orderID := chi.URLParam(r, "id")
	if _, err := s.storage.GetOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	payment := model.FlatPayment{
		PaymentID: uuid.NewString(),
		OrderID:   orderID,
		Amount:    req.Amount,
		Method:    req.Method,
		IsRefund:  req.IsRefund || req.Amount < 0,
		CashierID: user.ID,
		Date:      time.Now(),
	}

	if err := s.storage.AddPayment(r.Context(), payment); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "payment", fmt.Sprintf("%s %.2f %s", orderID, req.Amount, req.Method))
	writeJSON(w, http.StatusCreated, payment)
}

// paymentsWindow parses the from/to query params, defaulting to the current
// day so the register opens on today's movements.
func paymentsWindow(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad from: %w", err)
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("bad to: %w", err)
		}
		to = parsed
	}
	return from, to, nil
}

func (s *Server) PaymentsHandler(w http.ResponseWriter, r *http.Request) {
	from, to, err := paymentsWindow(r)
	if err != nil {
		http.Error(w, "invalid time window", http.StatusBadRequest)
		return
	}

	payments, err := s.storage.GetPayments(r.Context(), from, to)
	if err != nil {
		http.Error(w, "failed to get payments", http.StatusInternalServerError)
		return
	}

	if len(payments) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

func (s *Server) CashSummaryHandler(w http.ResponseWriter, r *http.Request) {
	from, to, err := paymentsWindow(r)
	if err != nil {
		http.Error(w, "invalid time window", http.StatusBadRequest)
		return
	}

	payments, err := s.storage.GetPayments(r.Context(), from, to)
	if err != nil {
		http.Error(w, "failed to get payments", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cash.AggregateByBranch(payments))
}

func (s *Server) ReconcileHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Branch == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	from, to, err := paymentsWindow(r)
	if err != nil {
		http.Error(w, "invalid time window", http.StatusBadRequest)
		return
	}

	payments, err := s.storage.GetPayments(r.Context(), from, to)
	if err != nil {
		http.Error(w, "failed to get payments", http.StatusInternalServerError)
		return
	}

	selected := make(map[string]bool, len(req.PaymentIDs))
	for _, id := range req.PaymentIDs {
		selected[id] = true
	}

	totals := cash.Reconcile(payments, req.Branch, selected)

	resp := struct {
		cash.ReconcileTotals
		Difference *float64 `json:"difference,omitempty"`
	}{ReconcileTotals: totals}

	if req.ActualTotal != nil {
		diff := cash.Difference(*req.ActualTotal, totals.Cash)
		resp.Difference = &diff
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) CreateClosingHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role != model.RoleAdmin && user.Role != model.RoleSubAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.ClosingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Branch == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	from, to, err := closingWindow(req)
	if err != nil {
		http.Error(w, "invalid time window", http.StatusBadRequest)
		return
	}

	payments, err := s.storage.GetPayments(r.Context(), from, to)
	if err != nil {
		http.Error(w, "failed to get payments", http.StatusInternalServerError)
		return
	}

	selected := make(map[string]bool, len(req.PaymentIDs))
	for _, id := range req.PaymentIDs {
		selected[id] = true
	}
	totals := cash.Reconcile(payments, req.Branch, selected)

	closing := model.Closing{
		ID:          uuid.NewString(),
		Branch:      req.Branch,
		CashierIDs:  joinIDs(req.CashierIDs),
		AdminID:     user.ID,
		SystemTotal: totals.Cash,
		ActualTotal: req.ActualTotal,
		Difference:  cash.Difference(req.ActualTotal, totals.Cash),
	}

	if err := s.storage.AddClosing(r.Context(), closing); err != nil {
		if errors.Is(err, errs.ErrSchemaMissing) {
			// remediable: the admin can create the table and retry
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "schema_missing",
				"hint":  "POST /api/admin/cash/schema to create the closings table",
			})
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	s.recordActivity(r, user, "cash_closing", fmt.Sprintf("%s diff %.2f", req.Branch, closing.Difference))
	writeJSON(w, http.StatusCreated, closing)
}

func closingWindow(req model.ClosingRequest) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	if req.From != "" {
		parsed, err := time.Parse(time.RFC3339, req.From)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if req.To != "" {
		parsed, err := time.Parse(time.RFC3339, req.To)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

func joinIDs(ids []int) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("%d", id)
	}
	return out
}

func (s *Server) ListClosingsHandler(w http.ResponseWriter, r *http.Request) {
	closings, err := s.storage.ListClosings(r.Context(), 50)
	if err != nil {
		if errors.Is(err, errs.ErrSchemaMissing) {
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "schema_missing",
				"hint":  "POST /api/admin/cash/schema to create the closings table",
			})
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if len(closings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, closings)
}

func (s *Server) EnsureClosingsSchemaHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.storage.EnsureClosingsSchema(r.Context()); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
