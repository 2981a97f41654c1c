package model

import "time"

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Branch   string `json:"branch"`
}

type IntakeRequest struct {
	Customer      string    `json:"customer"`
	DeviceModel   string    `json:"device_model"`
	Branch        string    `json:"branch"`
	Deadline      time.Time `json:"deadline"`
	EstimatedCost *float64  `json:"estimated_cost,omitempty"`
	Validated     *bool     `json:"validated,omitempty"`
}

type AssignRequest struct {
	TechnicianID int `json:"technician_id"`
}

type StatusRequest struct {
	Status     OrderStatus `json:"status"`
	FinalPrice *float64    `json:"final_price,omitempty"`
}

type TechMessageRequest struct {
	Message string `json:"message"`
}

type ResolveRequest struct {
	Approve bool `json:"approve"`
}

type PaymentRequest struct {
	Amount   float64       `json:"amount"`
	Method   PaymentMethod `json:"method"`
	IsRefund bool          `json:"is_refund"`
}

type ReconcileRequest struct {
	Branch      string   `json:"branch"`
	PaymentIDs  []string `json:"payment_ids"`
	ActualTotal *float64 `json:"actual_total,omitempty"`
}

type ClosingRequest struct {
	Branch      string   `json:"branch"`
	PaymentIDs  []string `json:"payment_ids"`
	CashierIDs  []int    `json:"cashier_ids"`
	ActualTotal float64  `json:"actual_total"`
	From        string   `json:"from"`
	To          string   `json:"to"`
}

type PartRequest struct {
	SKU    string `json:"sku"`
	Name   string `json:"name"`
	Stock  int    `json:"stock"`
	Branch string `json:"branch"`
}

type AdjustStockRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}
