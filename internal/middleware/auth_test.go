package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darwincel7/taller-sub001/internal/auth"
	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
)

type mockStorage struct {
	GetUserFunc func(ctx context.Context, id int) (model.User, error)
}

func (m *mockStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	return m.GetUserFunc(ctx, id)
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 0)
	validToken, _ := tm.GenerateToken(1)

	tests := []struct {
		name           string
		authHeader     string
		storage        Storage
		expectedStatus int
	}{
		{
			name:           "no header",
			authHeader:     "",
			storage:        &mockStorage{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer not.a.token",
			storage:        &mockStorage{},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			authHeader: "Bearer " + validToken,
			storage: &mockStorage{GetUserFunc: func(ctx context.Context, id int) (model.User, error) {
				return model.User{}, errs.ErrUserNotFound
			}},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "storage failure",
			authHeader: "Bearer " + validToken,
			storage: &mockStorage{GetUserFunc: func(ctx context.Context, id int) (model.User, error) {
				return model.User{}, errors.New("db down")
			}},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "ok",
			authHeader: "Bearer " + validToken,
			storage: &mockStorage{GetUserFunc: func(ctx context.Context, id int) (model.User, error) {
				return model.User{ID: 1, Login: "cashier1", Role: model.RoleCashier, Branch: "T1"}, nil
			}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser model.User
			handler := AuthMiddleware(tt.storage, tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = r.Context().Value(UserContextKey).(model.User)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedStatus == http.StatusOK && gotUser.ID != 1 {
				t.Errorf("user not placed in context")
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	handler := RequireRole(model.RoleAdmin, model.RoleMonitor)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name           string
		user           *model.User
		expectedStatus int
	}{
		{"admin", &model.User{ID: 1, Role: model.RoleAdmin}, http.StatusOK},
		{"monitor", &model.User{ID: 2, Role: model.RoleMonitor}, http.StatusOK},
		{"technician", &model.User{ID: 3, Role: model.RoleTechnician}, http.StatusForbidden},
		{"no user", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(context.WithValue(req.Context(), UserContextKey, *tt.user))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}
