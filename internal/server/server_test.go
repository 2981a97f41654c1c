package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darwincel7/taller-sub001/internal/auth"
	"github.com/darwincel7/taller-sub001/internal/config"
	"github.com/darwincel7/taller-sub001/internal/deps"
	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/middleware"
	"github.com/darwincel7/taller-sub001/internal/mocks"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func setup(t *testing.T) (*Server, *mocks.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockStorage := mocks.NewMockStorage(ctrl)

	logger := zaptest.NewLogger(t)
	cfg := &config.Config{}
	deps := &deps.Deps{
		TokenManager: auth.NewTokenManager("testsecret", 0),
		Logger:       logger.Sugar(),
	}

	srv := NewServer(mockStorage, cfg, deps)

	return srv, mockStorage
}

// asUser injects an authenticated user, the way AuthMiddleware would.
func asUser(req *http.Request, user model.User) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, user)
	return req.WithContext(ctx)
}

// withURLParam injects a chi route parameter for direct handler calls.
func withURLParam(req *http.Request, key, value string) *http.Request {
	return withURLParams(req, map[string]string{key: value})
}

func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func bcryptHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func TestRegisterHandler(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		CreateUser(gomock.Any(), "cashier1", gomock.Any(), model.RoleCashier, "T1").
		Return(nil)

	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "cashier1").
		Return(model.User{ID: 1, Login: "cashier1", Role: model.RoleCashier, Branch: "T1"}, "", nil)

	payload := `{"login":"cashier1","password":"pass","role":"cashier","branch":"T1"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	authHeader := resp.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		t.Errorf("missing token")
	}
}

func TestRegisterHandlerPrivilegedRoleUnauthenticated(t *testing.T) {
	srv, _ := setup(t)

	for _, role := range []string{"admin", "subadmin"} {
		payload := `{"login":"mallory","password":"pass","role":"` + role + `","branch":"T1"}`
		req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
		w := httptest.NewRecorder()

		srv.RegisterHandler(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("role %s: expected 403, got %d", role, w.Code)
		}
	}
}

func TestRegisterHandlerPrivilegedRoleByAdmin(t *testing.T) {
	srv, mock := setup(t)

	token, err := srv.deps.TokenManager.GenerateToken(1)
	if err != nil {
		t.Fatal(err)
	}

	mock.EXPECT().
		GetUserByID(gomock.Any(), 1).
		Return(model.User{ID: 1, Login: "boss", Role: model.RoleAdmin, Branch: "T1"}, nil)

	mock.EXPECT().
		CreateUser(gomock.Any(), "deputy", gomock.Any(), model.RoleSubAdmin, "T1").
		Return(nil)

	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "deputy").
		Return(model.User{ID: 2, Login: "deputy", Role: model.RoleSubAdmin, Branch: "T1"}, "", nil)

	payload := `{"login":"deputy","password":"pass","role":"subadmin","branch":"T1"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRegisterHandlerPrivilegedRoleByNonAdmin(t *testing.T) {
	srv, mock := setup(t)

	token, err := srv.deps.TokenManager.GenerateToken(5)
	if err != nil {
		t.Fatal(err)
	}

	mock.EXPECT().
		GetUserByID(gomock.Any(), 5).
		Return(model.User{ID: 5, Login: "tech", Role: model.RoleTechnician, Branch: "T1"}, nil)

	payload := `{"login":"mallory","password":"pass","role":"admin","branch":"T1"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRegisterHandlerUnknownRole(t *testing.T) {
	srv, _ := setup(t)

	payload := `{"login":"u1","password":"pass","role":"superuser"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
}

func TestRegisterHandlerDefaultsToTechnician(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		CreateUser(gomock.Any(), "newhire", gomock.Any(), model.RoleTechnician, "T1").
		Return(nil)

	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "newhire").
		Return(model.User{ID: 3, Login: "newhire", Role: model.RoleTechnician, Branch: "T1"}, "", nil)

	payload := `{"login":"newhire","password":"pass","branch":"T1"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRegisterHandlerLoginTaken(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		CreateUser(gomock.Any(), "cashier1", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.ErrLoginAlreadyExists)

	payload := `{"login":"cashier1","password":"pass"}`
	req := httptest.NewRequest("POST", "/api/user/register", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.RegisterHandler(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	srv, mock := setup(t)

	pw, _ := bcryptHash("pass")
	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "admin1").
		Return(model.User{ID: 1, Login: "admin1", Role: model.RoleAdmin, Branch: "T1"}, pw, nil)

	payload := `{"login":"admin1","password":"pass"}`
	req := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.LoginHandler(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	srv, mock := setup(t)

	pw, _ := bcryptHash("correct")
	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "admin1").
		Return(model.User{ID: 1, Login: "admin1"}, pw, nil)

	payload := `{"login":"admin1","password":"wrong"}`
	req := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.LoginHandler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandlerUnknownUser(t *testing.T) {
	srv, mock := setup(t)

	mock.EXPECT().
		GetUserByLogin(gomock.Any(), "ghost").
		Return(model.User{}, "", errs.ErrUserNotFound)

	payload := `{"login":"ghost","password":"pass"}`
	req := httptest.NewRequest("POST", "/api/user/login", strings.NewReader(payload))
	w := httptest.NewRecorder()

	srv.LoginHandler(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
