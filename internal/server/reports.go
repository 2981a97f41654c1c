package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/darwincel7/taller-sub001/internal/report"
	"github.com/go-chi/chi/v5"
)

type PeriodStats struct {
	Revenue   float64 `json:"revenue"`
	Count     int     `json:"count"`
	Projected float64 `json:"projected"`
}

type DashboardResponse struct {
	Branch string      `json:"branch,omitempty"`
	Day    PeriodStats `json:"day"`
	Week   PeriodStats `json:"week"`
	Month  PeriodStats `json:"month"`
}

func sumPeriod(payments []model.FlatPayment, branch string, from time.Time) (revenue float64, count int) {
	for _, p := range payments {
		if branch != "" && p.OrderBranch != branch {
			continue
		}
		if p.Date.Before(from) {
			continue
		}
		revenue += p.Amount
		count++
	}
	return revenue, count
}

func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")
	now := time.Now()

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday())) // Sunday-start
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	// the current week can begin in the previous month
	fetchFrom := monthStart
	if weekStart.Before(fetchFrom) {
		fetchFrom = weekStart
	}

	payments, err := s.storage.GetPayments(r.Context(), fetchFrom, now.Add(time.Second))
	if err != nil {
		http.Error(w, "failed to get payments", http.StatusInternalServerError)
		return
	}

	resp := DashboardResponse{Branch: branch}

	dayRevenue, dayCount := sumPeriod(payments, branch, dayStart)
	elapsed, total := report.DayUnits(now)
	resp.Day = PeriodStats{Revenue: dayRevenue, Count: dayCount, Projected: report.Project(dayRevenue, elapsed, total)}

	weekRevenue, weekCount := sumPeriod(payments, branch, weekStart)
	elapsed, total = report.WeekUnits(now)
	resp.Week = PeriodStats{Revenue: weekRevenue, Count: weekCount, Projected: report.Project(weekRevenue, elapsed, total)}

	monthRevenue, monthCount := sumPeriod(payments, branch, monthStart)
	elapsed, total = report.MonthUnits(now)
	resp.Month = PeriodStats{Revenue: monthRevenue, Count: monthCount, Projected: report.Project(monthRevenue, elapsed, total)}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := s.storage.Leaderboard(r.Context(), report.FortnightStart(time.Now()))
	if err != nil {
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	if len(rows) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) ActivityHandler(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := s.storage.ListActivity(r.Context(), limit)
	if err != nil {
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) ListPartsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	branch := r.URL.Query().Get("branch")
	if branch == "" {
		branch = user.Branch
	}

	parts, err := s.storage.ListParts(r.Context(), branch)
	if err != nil {
		http.Error(w, "failed to get parts", http.StatusInternalServerError)
		return
	}

	if len(parts) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, parts)
}

func (s *Server) CreatePartHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Role != model.RoleAdmin && user.Role != model.RoleSubAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req model.PartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Branch == "" {
		req.Branch = user.Branch
	}
	if req.SKU == "" || req.Name == "" || req.Stock < 0 {
		http.Error(w, "invalid part", http.StatusUnprocessableEntity)
		return
	}

	part, err := s.storage.CreatePart(r.Context(), model.Part{
		SKU:    req.SKU,
		Name:   req.Name,
		Stock:  req.Stock,
		Branch: req.Branch,
	})
	if err != nil {
		if errors.Is(err, errs.ErrSKUAlreadyExists) {
			http.Error(w, "sku taken", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, part)
}

func (s *Server) AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	partID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad part id", http.StatusBadRequest)
		return
	}

	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Delta == 0 {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	part, err := s.storage.AdjustStock(r.Context(), partID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPartNotFound):
			http.Error(w, "part not found", http.StatusNotFound)
		case errors.Is(err, errs.ErrInsufficientStock):
			http.Error(w, "not enough stock", http.StatusConflict)
		default:
			http.Error(w, "db error", http.StatusInternalServerError)
		}
		return
	}

	s.recordActivity(r, user, "stock_adjust", part.SKU)
	writeJSON(w, http.StatusOK, part)
}
