package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/golang/mock/gomock"
)

func TestDashboardHandler(t *testing.T) {
	srv, mock := setup(t)

	now := time.Now()
	mock.EXPECT().
		GetPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.FlatPayment{
			{PaymentID: "p1", Amount: 150, Method: model.MethodCash, Date: now, OrderBranch: "T1"},
			{PaymentID: "p2", Amount: 50, Method: model.MethodCard, Date: now, OrderBranch: "T4"},
		}, nil)

	req := asUser(httptest.NewRequest("GET", "/api/reports/dashboard?branch=T1", nil), testAdmin)
	w := httptest.NewRecorder()

	srv.DashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got DashboardResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if got.Day.Revenue != 150 || got.Day.Count != 1 {
		t.Errorf("day stats = %+v", got.Day)
	}
	// run-rate extrapolation never shrinks a partial-period total
	if got.Day.Projected < got.Day.Revenue {
		t.Errorf("day projection %f below revenue %f", got.Day.Projected, got.Day.Revenue)
	}
	if got.Month.Revenue != 150 || got.Month.Projected < got.Month.Revenue {
		t.Errorf("month stats = %+v", got.Month)
	}
}

func TestDashboardFetchWindowCoversWeek(t *testing.T) {
	srv, mock := setup(t)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -int(now.Weekday()))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	mock.EXPECT().
		GetPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, _ time.Time) ([]model.FlatPayment, error) {
			// the window must reach back to whichever period opens first,
			// or a week straddling a month boundary loses its early days
			if from.After(weekStart) {
				t.Errorf("fetch from %s misses week start %s", from, weekStart)
			}
			if from.After(monthStart) {
				t.Errorf("fetch from %s misses month start %s", from, monthStart)
			}
			return nil, nil
		})

	req := asUser(httptest.NewRequest("GET", "/api/reports/dashboard", nil), testAdmin)
	w := httptest.NewRecorder()

	srv.DashboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLeaderboardHandler(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		Leaderboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, since time.Time) ([]model.LeaderboardRow, error) {
			// fortnight windows open on the 1st or the 16th at midnight
			if since.Day() != 1 && since.Day() != 16 {
				t.Errorf("leaderboard window opens on day %d", since.Day())
			}
			return []model.LeaderboardRow{
				{TechnicianID: 5, Login: "tech1", Points: 12},
				{TechnicianID: 6, Login: "tech2", Points: 7},
			}, nil
		})

	req := asUser(httptest.NewRequest("GET", "/api/reports/leaderboard", nil), testAdmin)
	w := httptest.NewRecorder()

	srv.LeaderboardHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []model.LeaderboardRow
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Points != 12 {
		t.Errorf("unexpected leaderboard: %+v", got)
	}
}

func TestActivityHandlerInvalidLimit(t *testing.T) {
	srv, _ := setup(t)

	req := asUser(httptest.NewRequest("GET", "/api/activity?limit=99999", nil), testAdmin)
	w := httptest.NewRecorder()

	srv.ActivityHandler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAdjustStockHandlerInsufficient(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		AdjustStock(gomock.Any(), 3, -10).
		Return(model.Part{}, errs.ErrInsufficientStock)

	req := asUser(httptest.NewRequest("POST", "/api/parts/3/adjust", strings.NewReader(`{"delta":-10}`)), testCashier)
	req = withURLParam(req, "id", "3")
	w := httptest.NewRecorder()

	srv.AdjustStockHandler(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}
