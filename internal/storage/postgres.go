package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/darwincel7/taller-sub001/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStorage struct {
	db *pgxpool.Pool
}

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	// closings is deliberately absent here: its creation is an explicit
	// admin action (EnsureClosingsSchema) so a missing table is a
	// remediable condition, not a generic failure.
	const initSchemaQuery = `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		login TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		branch TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		readable_id BIGSERIAL UNIQUE,
		customer TEXT NOT NULL,
		device_model TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		assigned_to INT REFERENCES users(id),
		pending_assignment_to INT REFERENCES users(id),
		current_branch TEXT NOT NULL,
		origin_branch TEXT NOT NULL,
		transfer_target TEXT NOT NULL DEFAULT '',
		transfer_status TEXT,
		is_validated BOOLEAN NOT NULL DEFAULT TRUE,
		approval_ack_pending BOOLEAN NOT NULL DEFAULT FALSE,
		tech_message JSONB,
		return_request JSONB,
		external_repair JSONB,
		point_request JSONB,
		estimated_cost NUMERIC,
		final_price NUMERIC,
		deadline TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT NOW(),
		completed_at TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		order_id TEXT NOT NULL REFERENCES orders(id),
		amount NUMERIC NOT NULL,
		method TEXT NOT NULL,
		is_refund BOOLEAN NOT NULL DEFAULT FALSE,
		cashier_id INT NOT NULL REFERENCES users(id),
		paid_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS activity_log (
		id SERIAL PRIMARY KEY,
		user_id INT REFERENCES users(id),
		action TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS parts (
		id SERIAL PRIMARY KEY,
		sku TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		branch TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);`

	_, err := s.db.Exec(ctx, initSchemaQuery)
	return err
}

func NewPostgreStorage(ctx context.Context, DatabaseURI string) (*PostgresStorage, error) {
	db, err := pgxpool.New(ctx, DatabaseURI)
	if err != nil {
		return nil, err
	}

	storage := &PostgresStorage{db: db}

	if err := storage.Ping(ctx); err != nil {
		return nil, err
	}

	if err := storage.initSchema(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// ---- users

func (s *PostgresStorage) CreateUser(ctx context.Context, login, passwordHash string, role model.Role, branch string) error {
	const insertUserQuery = `INSERT INTO users (login, password_hash, role, branch) VALUES ($1, $2, $3, $4)`

	_, err := s.db.Exec(ctx, insertUserQuery, login, passwordHash, role, branch)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errs.ErrLoginAlreadyExists
		}
		return err
	}

	return nil
}

func (s *PostgresStorage) GetUserByLogin(ctx context.Context, login string) (model.User, string, error) {
	const query = `SELECT id, login, role, branch, password_hash FROM users WHERE login = $1`

	var user model.User
	var hash string

	err := s.db.QueryRow(ctx, query, login).Scan(&user.ID, &user.Login, &user.Role, &user.Branch, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, "", errs.ErrUserNotFound
		}
		return model.User{}, "", fmt.Errorf("get user by login: %w", err)
	}

	return user, hash, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id int) (model.User, error) {
	const query = `SELECT id, login, role, branch FROM users WHERE id = $1`

	var user model.User

	err := s.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Login, &user.Role, &user.Branch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by id: %w", err)
	}

	return user, nil
}

// ---- orders

const orderColumns = `id, readable_id, customer, device_model, status, assigned_to,
	pending_assignment_to, current_branch, origin_branch, transfer_target,
	transfer_status, is_validated, approval_ack_pending, tech_message,
	return_request, external_repair, point_request, estimated_cost,
	final_price, deadline, created_at, completed_at`

func scanOrder(row pgx.Row) (model.Order, error) {
	var o model.Order
	var transferStatus *string

	err := row.Scan(&o.ID, &o.ReadableID, &o.Customer, &o.DeviceModel, &o.Status,
		&o.AssignedTo, &o.PendingAssignmentTo, &o.CurrentBranch, &o.OriginBranch,
		&o.TransferTarget, &transferStatus, &o.IsValidated, &o.ApprovalAckPending,
		&o.TechMessage, &o.ReturnRequest, &o.ExternalRepair, &o.PointRequest,
		&o.EstimatedCost, &o.FinalPrice, &o.Deadline, &o.CreatedAt, &o.CompletedAt)
	if err != nil {
		return model.Order{}, err
	}

	if transferStatus != nil {
		ts := model.TransferStatus(*transferStatus)
		o.TransferStatus = &ts
	}

	return o, nil
}

func (s *PostgresStorage) collectOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return orders, nil
}

func (s *PostgresStorage) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	const query = `
		INSERT INTO orders (id, customer, device_model, status, current_branch,
			origin_branch, is_validated, estimated_cost, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING readable_id, created_at`

	err := s.db.QueryRow(ctx, query, o.ID, o.Customer, o.DeviceModel, o.Status,
		o.CurrentBranch, o.OriginBranch, o.IsValidated, o.EstimatedCost, o.Deadline).
		Scan(&o.ReadableID, &o.CreatedAt)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}

	return o, nil
}

func (s *PostgresStorage) GetOrder(ctx context.Context, id string) (model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, errs.ErrOrderNotFound
		}
		return model.Order{}, fmt.Errorf("get order: %w", err)
	}

	return o, nil
}

func (s *PostgresStorage) ListBranchOrders(ctx context.Context, branch string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE current_branch = $1 ORDER BY created_at DESC`

	orders, err := s.collectOrders(ctx, query, branch)
	if err != nil {
		return nil, fmt.Errorf("list branch orders: %w", err)
	}
	return orders, nil
}

// ListOpenOrders returns every order still in the active workflow, most
// pressing deadline first. The overdue sweep runs over this set.
func (s *PostgresStorage) ListOpenOrders(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE status NOT IN ('RETURNED', 'CANCELED', 'REPAIRED')
		ORDER BY deadline ASC`

	orders, err := s.collectOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	return orders, nil
}

// GetAlertCandidates runs the broad OR query behind the alert feed. It is
// intentionally loose: the predicate engine re-validates every row per
// viewer, so this only has to avoid dropping anything that could match.
func (s *PostgresStorage) GetAlertCandidates(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE status <> 'CANCELED' AND (
			pending_assignment_to IS NOT NULL
			OR (tech_message->>'pending')::boolean IS TRUE
			OR approval_ack_pending
			OR transfer_status = 'pending'
			OR point_request->>'status' = 'pending'
			OR return_request->>'status' = 'pending'
			OR external_repair->>'status' = 'pending'
			OR NOT is_validated
			OR status = 'WAITING_APPROVAL'
		)
		ORDER BY created_at DESC`

	orders, err := s.collectOrders(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get alert candidates: %w", err)
	}
	return orders, nil
}

// ClaimOrder hands an unassigned order to a technician. The conditional
// UPDATE makes the first claim win; losers get ErrAlreadyAssigned.
func (s *PostgresStorage) ClaimOrder(ctx context.Context, orderID string, techID int) error {
	const query = `
		UPDATE orders SET assigned_to = $1
		WHERE id = $2 AND assigned_to IS NULL`

	cmdTag, err := s.db.Exec(ctx, query, techID, orderID)
	if err != nil {
		return fmt.Errorf("claim order: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		if _, err := s.GetOrder(ctx, orderID); err != nil {
			return err
		}
		return errs.ErrAlreadyAssigned
	}

	return nil
}

func (s *PostgresStorage) RequestAssignment(ctx context.Context, orderID string, techID int) error {
	const query = `UPDATE orders SET pending_assignment_to = $1 WHERE id = $2`

	cmdTag, err := s.db.Exec(ctx, query, techID, orderID)
	if err != nil {
		return fmt.Errorf("request assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (s *PostgresStorage) AcceptAssignment(ctx context.Context, orderID string, techID int) error {
	const query = `
		UPDATE orders SET assigned_to = $1, pending_assignment_to = NULL
		WHERE id = $2 AND pending_assignment_to = $1`

	cmdTag, err := s.db.Exec(ctx, query, techID, orderID)
	if err != nil {
		return fmt.Errorf("accept assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := s.GetOrder(ctx, orderID); err != nil {
			return err
		}
		return errs.ErrRequestNotPending
	}
	return nil
}

func (s *PostgresStorage) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus, finalPrice *float64) error {
	const query = `
		UPDATE orders
		SET status = $1,
			final_price = COALESCE($2, final_price),
			completed_at = CASE WHEN $3 THEN NOW() ELSE completed_at END
		WHERE id = $4`

	cmdTag, err := s.db.Exec(ctx, query, status, finalPrice, status.IsTerminal(), orderID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (s *PostgresStorage) ValidateOrder(ctx context.Context, orderID string) error {
	const query = `UPDATE orders SET is_validated = TRUE WHERE id = $1`

	cmdTag, err := s.db.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("validate order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (s *PostgresStorage) AckApproval(ctx context.Context, orderID string, techID int) error {
	const query = `
		UPDATE orders SET approval_ack_pending = FALSE
		WHERE id = $1 AND assigned_to = $2 AND approval_ack_pending`

	cmdTag, err := s.db.Exec(ctx, query, orderID, techID)
	if err != nil {
		return fmt.Errorf("ack approval: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := s.GetOrder(ctx, orderID); err != nil {
			return err
		}
		return errs.ErrNotAssignee
	}
	return nil
}

func (s *PostgresStorage) SetTechMessage(ctx context.Context, orderID string, message string) error {
	const query = `
		UPDATE orders SET tech_message = jsonb_build_object('pending', true, 'message', $1::text)
		WHERE id = $2`

	cmdTag, err := s.db.Exec(ctx, query, message, orderID)
	if err != nil {
		return fmt.Errorf("set tech message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

func (s *PostgresStorage) ResolveTechMessage(ctx context.Context, orderID string) error {
	const query = `
		UPDATE orders SET tech_message = jsonb_set(tech_message, '{pending}', 'false')
		WHERE id = $1 AND (tech_message->>'pending')::boolean IS TRUE`

	cmdTag, err := s.db.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("resolve tech message: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrRequestNotPending
	}
	return nil
}

var subRequestColumns = map[string]string{
	"point":    "point_request",
	"return":   "return_request",
	"external": "external_repair",
}

// ResolveSubRequest approves or rejects a pending point/return/external
// sub-record. Only pending requests can be resolved.
func (s *PostgresStorage) ResolveSubRequest(ctx context.Context, orderID, kind string, approve bool) error {
	column, ok := subRequestColumns[kind]
	if !ok {
		return fmt.Errorf("unknown request kind %q", kind)
	}

	newStatus := string(model.RequestRejected)
	if approve {
		newStatus = string(model.RequestApproved)
	}

	query := fmt.Sprintf(`
		UPDATE orders SET %[1]s = jsonb_set(%[1]s, '{status}', to_jsonb($1::text))
		WHERE id = $2 AND %[1]s->>'status' = 'pending'`, column)

	cmdTag, err := s.db.Exec(ctx, query, newStatus, orderID)
	if err != nil {
		return fmt.Errorf("resolve %s request: %w", kind, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return errs.ErrRequestNotPending
	}
	return nil
}

func (s *PostgresStorage) Leaderboard(ctx context.Context, since time.Time) ([]model.LeaderboardRow, error) {
	const query = `
		SELECT o.assigned_to, u.login, SUM((o.point_request->>'points')::int) AS points
		FROM orders o
		JOIN users u ON u.id = o.assigned_to
		WHERE o.point_request->>'status' = 'approved'
			AND o.assigned_to IS NOT NULL
			AND o.completed_at >= $1
		GROUP BY o.assigned_to, u.login
		ORDER BY points DESC`

	rows, err := s.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var list []model.LeaderboardRow
	for rows.Next() {
		var row model.LeaderboardRow
		if err := rows.Scan(&row.TechnicianID, &row.Login, &row.Points); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		list = append(list, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

// ---- payments and closings

func (s *PostgresStorage) AddPayment(ctx context.Context, p model.FlatPayment) error {
	const query = `
		INSERT INTO payments (id, order_id, amount, method, is_refund, cashier_id, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.Exec(ctx, query, p.PaymentID, p.OrderID, p.Amount, p.Method, p.IsRefund, p.CashierID, p.Date)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetPayments(ctx context.Context, from, to time.Time) ([]model.FlatPayment, error) {
	const query = `
		SELECT p.id, p.amount, p.method, p.is_refund, p.paid_at,
			p.cashier_id, u.login,
			o.id, o.readable_id, o.device_model, o.customer, o.current_branch
		FROM payments p
		JOIN orders o ON o.id = p.order_id
		JOIN users u ON u.id = p.cashier_id
		WHERE p.paid_at >= $1 AND p.paid_at < $2
		ORDER BY p.paid_at ASC`

	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}
	defer rows.Close()

	var list []model.FlatPayment
	for rows.Next() {
		var p model.FlatPayment
		err := rows.Scan(&p.PaymentID, &p.Amount, &p.Method, &p.IsRefund, &p.Date,
			&p.CashierID, &p.CashierName,
			&p.OrderID, &p.OrderReadableID, &p.OrderModel, &p.OrderCustomer, &p.OrderBranch)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	// 42P01 — relation does not exist
	return errors.As(err, &pgErr) && pgErr.Code == "42P01"
}

// AddClosing appends an immutable closing record. A missing closings table
// maps to errs.ErrSchemaMissing so the caller can offer remediation instead
// of a blind retry.
func (s *PostgresStorage) AddClosing(ctx context.Context, c model.Closing) error {
	const query = `
		INSERT INTO closings (id, branch, cashier_ids, admin_id, system_total, actual_total, difference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.Exec(ctx, query, c.ID, c.Branch, c.CashierIDs, c.AdminID, c.SystemTotal, c.ActualTotal, c.Difference)
	if err != nil {
		if isUndefinedTable(err) {
			return errs.ErrSchemaMissing
		}
		return fmt.Errorf("insert closing: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListClosings(ctx context.Context, limit int) ([]model.Closing, error) {
	const query = `
		SELECT id, branch, cashier_ids, admin_id, system_total, actual_total, difference, created_at
		FROM closings
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, errs.ErrSchemaMissing
		}
		return nil, fmt.Errorf("list closings: %w", err)
	}
	defer rows.Close()

	var list []model.Closing
	for rows.Next() {
		var c model.Closing
		err := rows.Scan(&c.ID, &c.Branch, &c.CashierIDs, &c.AdminID, &c.SystemTotal, &c.ActualTotal, &c.Difference, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan closing: %w", err)
		}
		list = append(list, c)
	}

	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return nil, errs.ErrSchemaMissing
		}
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func (s *PostgresStorage) EnsureClosingsSchema(ctx context.Context) error {
	const query = `
	CREATE TABLE IF NOT EXISTS closings (
		id TEXT PRIMARY KEY,
		branch TEXT NOT NULL,
		cashier_ids TEXT NOT NULL,
		admin_id INT NOT NULL REFERENCES users(id),
		system_total NUMERIC NOT NULL,
		actual_total NUMERIC NOT NULL,
		difference NUMERIC NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);`

	_, err := s.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("ensure closings schema: %w", err)
	}
	return nil
}

// ---- activity log

// RecordActivity appends an audit entry. userID 0 stores NULL so system
// entries (the overdue sweep) don't need a users row.
func (s *PostgresStorage) RecordActivity(ctx context.Context, userID int, action, details string) error {
	const query = `INSERT INTO activity_log (user_id, action, details) VALUES (NULLIF($1, 0), $2, $3)`

	_, err := s.db.Exec(ctx, query, userID, action, details)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (s *PostgresStorage) ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	const query = `
		SELECT id, COALESCE(user_id, 0), action, details, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var list []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

// ---- parts

func (s *PostgresStorage) ListParts(ctx context.Context, branch string) ([]model.Part, error) {
	const query = `SELECT id, sku, name, stock, branch, created_at FROM parts WHERE branch = $1 ORDER BY name`

	rows, err := s.db.Query(ctx, query, branch)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()

	var list []model.Part
	for rows.Next() {
		var p model.Part
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Stock, &p.Branch, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return list, nil
}

func (s *PostgresStorage) CreatePart(ctx context.Context, p model.Part) (model.Part, error) {
	const query = `
		INSERT INTO parts (sku, name, stock, branch)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query, p.SKU, p.Name, p.Stock, p.Branch).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Part{}, errs.ErrSKUAlreadyExists
		}
		return model.Part{}, fmt.Errorf("insert part: %w", err)
	}
	return p, nil
}

func (s *PostgresStorage) AdjustStock(ctx context.Context, partID, delta int) (model.Part, error) {
	const query = `
		UPDATE parts SET stock = stock + $1
		WHERE id = $2
		RETURNING id, sku, name, stock, branch, created_at`

	var p model.Part
	err := s.db.QueryRow(ctx, query, delta, partID).Scan(&p.ID, &p.SKU, &p.Name, &p.Stock, &p.Branch, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Part{}, errs.ErrPartNotFound
		}
		var pgErr *pgconn.PgError
		// 23514 — check constraint (stock never goes negative)
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return model.Part{}, errs.ErrInsufficientStock
		}
		return model.Part{}, fmt.Errorf("adjust stock: %w", err)
	}
	return p, nil
}
