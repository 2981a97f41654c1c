package model

import "time"

type OrderStatus string

const (
	Pending         OrderStatus = "PENDING"
	Diagnosis       OrderStatus = "DIAGNOSIS"
	WaitingApproval OrderStatus = "WAITING_APPROVAL"
	InRepair        OrderStatus = "IN_REPAIR"
	Repaired        OrderStatus = "REPAIRED"
	Returned        OrderStatus = "RETURNED"
	Canceled        OrderStatus = "CANCELED"
	External        OrderStatus = "EXTERNAL"
)

// IsTerminal reports whether an order has left the active workflow.
// Terminal orders never show up in overdue scans.
func (s OrderStatus) IsTerminal() bool {
	return s == Returned || s == Canceled || s == Repaired
}

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSubAdmin   Role = "subadmin"
	RoleMonitor    Role = "monitor"
	RoleCashier    Role = "cashier"
	RoleTechnician Role = "technician"
)

type PaymentMethod string

const (
	MethodCash     PaymentMethod = "cash"
	MethodTransfer PaymentMethod = "transfer"
	MethodCard     PaymentMethod = "card"
	MethodCredit   PaymentMethod = "credit"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

type TransferStatus string

const TransferPending TransferStatus = "pending"

type AlertType string

const (
	AlertAssignmentRequest AlertType = "assignment_request"
	AlertTechMessage       AlertType = "tech_message"
	AlertApprovedAck       AlertType = "approved_ack"
	AlertTransfer          AlertType = "transfer"
	AlertPoints            AlertType = "points"
	AlertReturnRequest     AlertType = "return_request"
	AlertExternalRequest   AlertType = "external_request"
	AlertValidate          AlertType = "validate"
	AlertBudget            AlertType = "budget"
	AlertGeneric           AlertType = "generic"
)

type User struct {
	ID     int    `json:"id"`
	Login  string `json:"login"`
	Role   Role   `json:"role"`
	Branch string `json:"branch"`
}

// SubRequest is a pending/approved/rejected sub-record attached to an order
// (point request, return request, external repair proposal).
type SubRequest struct {
	Status         RequestStatus `json:"status"`
	Points         int           `json:"points,omitempty"`
	TargetWorkshop string        `json:"target_workshop,omitempty"`
	SplitProposal  string        `json:"split_proposal,omitempty"`
	Note           string        `json:"note,omitempty"`
}

type TechMessage struct {
	Pending bool   `json:"pending"`
	Message string `json:"message"`
}

type Order struct {
	ID                  string          `json:"id"`
	ReadableID          int64           `json:"readable_id"`
	Customer            string          `json:"customer"`
	DeviceModel         string          `json:"device_model"`
	Status              OrderStatus     `json:"status"`
	AssignedTo          *int            `json:"assigned_to,omitempty"`
	PendingAssignmentTo *int            `json:"pending_assignment_to,omitempty"`
	CurrentBranch       string          `json:"current_branch"`
	OriginBranch        string          `json:"origin_branch"`
	TransferTarget      string          `json:"transfer_target,omitempty"`
	TransferStatus      *TransferStatus `json:"transfer_status,omitempty"`
	IsValidated         bool            `json:"is_validated"`
	ApprovalAckPending  bool            `json:"approval_ack_pending"`
	TechMessage         *TechMessage    `json:"tech_message,omitempty"`
	ReturnRequest       *SubRequest     `json:"return_request,omitempty"`
	ExternalRepair      *SubRequest     `json:"external_repair,omitempty"`
	PointRequest        *SubRequest     `json:"point_request,omitempty"`
	EstimatedCost       *float64        `json:"estimated_cost,omitempty"`
	FinalPrice          *float64        `json:"final_price,omitempty"`
	Deadline            time.Time       `json:"deadline"`
	CreatedAt           time.Time       `json:"created_at"`
	CompletedAt         *time.Time      `json:"completed_at,omitempty"`
}

// FlatPayment is a payment row denormalized with its order context, the
// shape the cash register works with.
type FlatPayment struct {
	PaymentID       string        `json:"payment_id"`
	Amount          float64       `json:"amount"`
	Method          PaymentMethod `json:"method"`
	IsRefund        bool          `json:"is_refund"`
	Date            time.Time     `json:"date"`
	CashierID       int           `json:"cashier_id"`
	CashierName     string        `json:"cashier_name"`
	OrderID         string        `json:"order_id"`
	OrderReadableID int64         `json:"order_readable_id"`
	OrderModel      string        `json:"order_model"`
	OrderCustomer   string        `json:"order_customer"`
	OrderBranch     string        `json:"order_branch"`
}

// Closing is an immutable end-of-shift reconciliation record. There is no
// update or delete path for closings anywhere in the service.
type Closing struct {
	ID          string    `json:"id"`
	Branch      string    `json:"branch"`
	CashierIDs  string    `json:"cashier_ids"` // comma-joined
	AdminID     int       `json:"admin_id"`
	SystemTotal float64   `json:"system_total"`
	ActualTotal float64   `json:"actual_total"`
	Difference  float64   `json:"difference"`
	CreatedAt   time.Time `json:"created_at"`
}

type ActivityEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type Part struct {
	ID        int       `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Branch    string    `json:"branch"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardRow is a technician's point total for the current fortnight
// (totals reset on the 1st and the 16th).
type LeaderboardRow struct {
	TechnicianID int    `json:"technician_id"`
	Login        string `json:"login"`
	Points       int    `json:"points"`
}
