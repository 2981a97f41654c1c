package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/darwincel7/taller-sub001/internal/config"
	"github.com/darwincel7/taller-sub001/internal/deps"
	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/middleware"
	"github.com/darwincel7/taller-sub001/internal/model"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

type Storage interface {
	CreateUser(ctx context.Context, login, passwordHash string, role model.Role, branch string) error
	GetUserByLogin(ctx context.Context, login string) (model.User, string, error)
	GetUserByID(ctx context.Context, id int) (model.User, error)

	CreateOrder(ctx context.Context, order model.Order) (model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, error)
	ListBranchOrders(ctx context.Context, branch string) ([]model.Order, error)
	ListOpenOrders(ctx context.Context) ([]model.Order, error)
	GetAlertCandidates(ctx context.Context) ([]model.Order, error)
	ClaimOrder(ctx context.Context, orderID string, techID int) error
	RequestAssignment(ctx context.Context, orderID string, techID int) error
	AcceptAssignment(ctx context.Context, orderID string, techID int) error
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, finalPrice *float64) error
	ValidateOrder(ctx context.Context, orderID string) error
	AckApproval(ctx context.Context, orderID string, techID int) error
	SetTechMessage(ctx context.Context, orderID, message string) error
	ResolveTechMessage(ctx context.Context, orderID string) error
	ResolveSubRequest(ctx context.Context, orderID, kind string, approve bool) error
	Leaderboard(ctx context.Context, since time.Time) ([]model.LeaderboardRow, error)

	AddPayment(ctx context.Context, p model.FlatPayment) error
	GetPayments(ctx context.Context, from, to time.Time) ([]model.FlatPayment, error)
	AddClosing(ctx context.Context, c model.Closing) error
	ListClosings(ctx context.Context, limit int) ([]model.Closing, error)
	EnsureClosingsSchema(ctx context.Context) error

	RecordActivity(ctx context.Context, userID int, action, details string) error
	ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)

	ListParts(ctx context.Context, branch string) ([]model.Part, error)
	CreatePart(ctx context.Context, p model.Part) (model.Part, error)
	AdjustStock(ctx context.Context, partID, delta int) (model.Part, error)
}

type Server struct {
	storage Storage
	config  *config.Config
	deps    *deps.Deps
}

func NewServer(storage Storage, config *config.Config, deps *deps.Deps) *Server {
	return &Server{
		storage: storage,
		config:  config,
		deps:    deps,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.storage, srv.deps.TokenManager))

		r.Post("/api/orders", srv.IntakeHandler)
		r.Get("/api/orders", srv.ListOrdersHandler)
		r.Get("/api/orders/overdue", srv.OverdueHandler)
		r.Get("/api/orders/{id}", srv.GetOrderHandler)
		r.Post("/api/orders/{id}/claim", srv.ClaimHandler)
		r.Post("/api/orders/{id}/assign", srv.AssignHandler)
		r.Post("/api/orders/{id}/accept", srv.AcceptHandler)
		r.Post("/api/orders/{id}/status", srv.StatusHandler)
		r.Post("/api/orders/{id}/validate", srv.ValidateHandler)
		r.Post("/api/orders/{id}/ack-approval", srv.AckApprovalHandler)
		r.Post("/api/orders/{id}/tech-message", srv.TechMessageHandler)
		r.Post("/api/orders/{id}/tech-message/resolve", srv.ResolveTechMessageHandler)
		r.Post("/api/orders/{id}/requests/{kind}/resolve", srv.ResolveRequestHandler)
		r.Post("/api/orders/{id}/payments", srv.AddPaymentHandler)

		r.Get("/api/alerts", srv.AlertsHandler)

		r.Get("/api/cash/payments", srv.PaymentsHandler)
		r.Get("/api/cash/summary", srv.CashSummaryHandler)
		r.Post("/api/cash/reconcile", srv.ReconcileHandler)
		r.Post("/api/cash/closings", srv.CreateClosingHandler)
		r.Get("/api/cash/closings", srv.ListClosingsHandler)

		r.Get("/api/reports/dashboard", srv.DashboardHandler)
		r.Get("/api/reports/leaderboard", srv.LeaderboardHandler)
		r.Get("/api/activity", srv.ActivityHandler)

		r.Get("/api/parts", srv.ListPartsHandler)
		r.Post("/api/parts", srv.CreatePartHandler)
		r.Post("/api/parts/{id}/adjust", srv.AdjustStockHandler)

		r.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireRole(model.RoleAdmin))
			admin.Post("/api/admin/cash/schema", srv.EnsureClosingsSchemaHandler)
		})
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:    srv.config.RunAddress,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()

	go srv.OverdueSweep(ctx)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func currentUser(r *http.Request) (model.User, bool) {
	user, ok := r.Context().Value(middleware.UserContextKey).(model.User)
	return user, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var validRoles = map[model.Role]bool{
	model.RoleAdmin:      true,
	model.RoleSubAdmin:   true,
	model.RoleMonitor:    true,
	model.RoleCashier:    true,
	model.RoleTechnician: true,
}

var privilegedRoles = map[model.Role]bool{
	model.RoleAdmin:    true,
	model.RoleSubAdmin: true,
}

// requesterIsAdmin resolves the optional bearer token on the public
// register route. Registration itself is open, but granting a
// privileged role requires an already authenticated admin.
func (s *Server) requesterIsAdmin(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return false
	}

	userID, err := s.deps.TokenManager.ParseToken(token)
	if err != nil {
		return false
	}

	user, err := s.storage.GetUserByID(r.Context(), userID)
	if err != nil {
		return false
	}

	return user.Role == model.RoleAdmin
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}
	if req.Role == "" {
		req.Role = model.RoleTechnician
	}
	if !validRoles[req.Role] {
		http.Error(w, "unknown role", http.StatusUnprocessableEntity)
		return
	}
	if privilegedRoles[req.Role] && !s.requesterIsAdmin(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "hash error", http.StatusInternalServerError)
		return
	}

	err = s.storage.CreateUser(r.Context(), req.Login, string(hash), req.Role, req.Branch)
	if err != nil {
		if errors.Is(err, errs.ErrLoginAlreadyExists) {
			http.Error(w, "login taken", http.StatusConflict)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	user, _, err := s.storage.GetUserByLogin(r.Context(), req.Login)
	if err != nil {
		http.Error(w, "failed to fetch user", http.StatusInternalServerError)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if creds.Login == "" || creds.Password == "" {
		http.Error(w, "login and password required", http.StatusBadRequest)
		return
	}

	user, hash, err := s.storage.GetUserByLogin(r.Context(), creds.Login)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := s.deps.TokenManager.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "token error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}
