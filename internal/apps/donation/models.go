package donation

import (
	"time"
)

// Donation payment lifecycle. Status may move pending -> completed (via
// verified gateway signature or explicit UPI completion) or pending ->
// failed; it never moves back to pending.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

const (
	MethodOnline       = "online"
	MethodUPI          = "upi"
	MethodBankTransfer = "bank_transfer"
	MethodCash         = "cash"
)

// donationCategories is the closed set of program names donations fund.
const donationCategories = "blood_bank educational_resources food_distribution vedic_sanskrit_education goshala help_people medical_assistance yoga_classes book_bank others"

type Donation struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Category         string     `gorm:"size:50;not null;index" json:"category"`
	DonorName        string     `gorm:"size:150;not null" json:"donorName"`
	DonorEmail       *string    `gorm:"size:200" json:"donorEmail,omitempty"`
	DonorPhoneNumber *string    `gorm:"size:20" json:"donorPhoneNumber,omitempty"`
	PanNumber        *string    `gorm:"size:20" json:"panNumber,omitempty"`
	Amount           *float64   `json:"amount,omitempty"`
	DonorAddress     *string    `gorm:"type:text" json:"donorAddress,omitempty"`
	PaymentID        *string    `gorm:"size:100" json:"paymentId,omitempty"`
	OrderID          *string    `gorm:"size:100;index" json:"orderId,omitempty"`
	Status           string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	PaymentMethod    *string    `gorm:"size:20" json:"paymentMethod,omitempty"`
	TransactionDate  *time.Time `json:"transactionDate,omitempty"`
	UpiTransactionID *string    `gorm:"size:100" json:"upiTransactionId,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (Donation) TableName() string {
	return "donations"
}

// --- DTOs ---

type CreateDonationRequest struct {
	Category         string   `json:"category" validate:"required,oneof=blood_bank educational_resources food_distribution vedic_sanskrit_education goshala help_people medical_assistance yoga_classes book_bank others"`
	DonorName        string   `json:"donorName" validate:"required,max=150"`
	DonorEmail       *string  `json:"donorEmail" validate:"omitempty,email,max=200"`
	DonorPhoneNumber *string  `json:"donorPhoneNumber" validate:"omitempty,max=20"`
	PanNumber        *string  `json:"panNumber" validate:"omitempty,max=20"`
	Amount           *float64 `json:"amount" validate:"omitempty,gt=0"`
	DonorAddress     *string  `json:"donorAddress"`
	PaymentMethod    *string  `json:"paymentMethod" validate:"omitempty,oneof=online upi bank_transfer cash"`
}

type UpdateDonationRequest struct {
	Category         *string  `json:"category" validate:"omitempty,oneof=blood_bank educational_resources food_distribution vedic_sanskrit_education goshala help_people medical_assistance yoga_classes book_bank others"`
	DonorName        *string  `json:"donorName" validate:"omitempty,max=150"`
	DonorEmail       *string  `json:"donorEmail" validate:"omitempty,email,max=200"`
	DonorPhoneNumber *string  `json:"donorPhoneNumber" validate:"omitempty,max=20"`
	PanNumber        *string  `json:"panNumber" validate:"omitempty,max=20"`
	Amount           *float64 `json:"amount" validate:"omitempty,gt=0"`
	DonorAddress     *string  `json:"donorAddress"`
}

type CreateOrderRequest struct {
	DonationID uint     `json:"donationId" validate:"required"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// VerifyPaymentRequest carries the fields the gateway hands to the client
// after its checkout callback.
type VerifyPaymentRequest struct {
	DonationID uint   `json:"donationId" validate:"required"`
	OrderID    string `json:"order_id" validate:"required"`
	PaymentID  string `json:"payment_id" validate:"required"`
	Signature  string `json:"signature" validate:"required"`
}

type GenerateQRRequest struct {
	DonationID uint     `json:"donationId" validate:"required"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type CompleteUPIRequest struct {
	DonationID       uint   `json:"donationId" validate:"required"`
	UpiTransactionID string `json:"upiTransactionId" validate:"required,max=100"`
}

type QRCodeResponse struct {
	DonationID uint   `json:"donationId"`
	UpiURI     string `json:"upiUri"`
	// QRImage is a base64 data URL the frontend can drop into an <img>.
	QRImage string  `json:"qrImage"`
	Amount  float64 `json:"amount"`
}

type ListResponse struct {
	Donations  []Donation  `json:"donations"`
	Pagination interface{} `json:"pagination"`
}

// PaymentSummary aggregates donation totals for the admin panel.
type PaymentSummary struct {
	TotalDonations   int64              `json:"totalDonations"`
	CompletedAmount  float64            `json:"completedAmount"`
	ByStatus         map[string]int64   `json:"byStatus"`
	ByMethod         map[string]int64   `json:"byMethod"`
	AmountByCategory map[string]float64 `json:"amountByCategory"`
}
