package models

import (
	"time"
)

type PaymentStatus string

const (
	// PaymentPending means the customer submitted a confirmation that no
	// admin has reviewed yet.
	PaymentPending   PaymentStatus = "PENDING"
	PaymentConfirmed PaymentStatus = "CONFIRMED"
	PaymentRejected  PaymentStatus = "REJECTED"
)

type PaymentMethod string

const (
	MethodTransfer PaymentMethod = "TRANSFER"
	MethodCash     PaymentMethod = "CASH"
	MethodOnline   PaymentMethod = "ONLINE"
	MethodOther    PaymentMethod = "OTHER"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentConfirmed, PaymentRejected:
		return true
	}
	return false
}

func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case MethodTransfer, MethodCash, MethodOnline, MethodOther:
		return true
	}
	return false
}

// Payment belongs to exactly one customer. Rows are never deleted, only the
// status moves PENDING -> CONFIRMED or PENDING -> REJECTED. Seq is a serial
// that preserves insertion order independently of payment dates.
// Amount is in whole Rupiah. StripeSessionID links an ONLINE payment to its
// Checkout session and stays empty for every other method.
type Payment struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerID      string        `json:"customerId" gorm:"type:uuid;not null;index"`
	Seq             int64         `json:"seq" gorm:"autoIncrement;uniqueIndex"`
	PaymentDate     time.Time     `json:"paymentDate"`
	Amount          int64         `json:"amount"`
	PeriodStart     time.Time     `json:"periodStart"`
	PeriodEnd       time.Time     `json:"periodEnd"`
	ProofURL        string        `json:"proofUrl"`
	Signature       string        `json:"signature"`
	Method          PaymentMethod `json:"method" gorm:"type:varchar(20);default:'TRANSFER'"`
	Notes           string        `json:"notes"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	StripeSessionID string        `json:"stripeSessionId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// PaymentCreate is the admin recording form. The period fields are optional;
// when omitted the billing calculator derives them.
type PaymentCreate struct {
	PaymentDate string        `json:"paymentDate" binding:"required"`
	Amount      int64         `json:"amount" binding:"required"`
	PeriodStart string        `json:"periodStart"`
	PeriodEnd   string        `json:"periodEnd"`
	ProofURL    string        `json:"proofUrl"`
	Signature   string        `json:"signature"`
	Method      PaymentMethod `json:"method"`
	Notes       string        `json:"notes"`
	Status      PaymentStatus `json:"status"`
}

// PaymentConfirmationCreate is the portal submission form (multipart so a
// proof image can ride along).
type PaymentConfirmationCreate struct {
	PaymentDate string `form:"paymentDate" binding:"required"`
	Amount      int64  `form:"amount" binding:"required"`
	Method      string `form:"method"`
	ProofURL    string `form:"proofUrl"`
	Signature   string `form:"signature"`
	Notes       string `form:"notes"`
}

type PaymentStatusUpdate struct {
	Status PaymentStatus `json:"status" binding:"required"`
}
