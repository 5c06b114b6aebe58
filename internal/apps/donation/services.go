package donation

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/dto"
	"github.com/seva-foundation/temple-backend/internal/payment"
	"gorm.io/gorm"
)

var (
	ErrDonationNotFound     = errors.New("donation not found")
	ErrAmountRequired       = errors.New("donation amount is required")
	ErrAlreadyCompleted     = errors.New("donation payment is already completed")
	ErrSignatureMismatch    = errors.New("payment signature verification failed")
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")
	ErrUPINotConfigured     = errors.New("UPI payee is not configured")
)

type Service struct {
	db      *gorm.DB
	gateway payment.GatewayClient
	cfg     *config.Config
}

func NewService(db *gorm.DB, gateway payment.GatewayClient, cfg *config.Config) *Service {
	return &Service{db: db, gateway: gateway, cfg: cfg}
}

func (s *Service) Create(req *CreateDonationRequest) (*Donation, error) {
	d := Donation{
		Category:         req.Category,
		DonorName:        req.DonorName,
		DonorEmail:       req.DonorEmail,
		DonorPhoneNumber: req.DonorPhoneNumber,
		PanNumber:        req.PanNumber,
		Amount:           req.Amount,
		DonorAddress:     req.DonorAddress,
		PaymentMethod:    req.PaymentMethod,
		Status:           StatusPending,
	}
	if err := s.db.Create(&d).Error; err != nil {
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}
	return &d, nil
}

func (s *Service) List(page, limit int, category, status, method, search string) (*ListResponse, error) {
	page, limit = dto.ParsePage(page, limit)
	offset := (page - 1) * limit

	query := s.db.Model(&Donation{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if method != "" {
		query = query.Where("payment_method = ?", method)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(donor_name) LIKE ? OR LOWER(donor_email) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var donations []Donation
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&donations).Error; err != nil {
		return nil, err
	}

	return &ListResponse{
		Donations:  donations,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *Service) Get(id uint) (*Donation, error) {
	var d Donation
	if err := s.db.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *Service) Update(id uint, req *UpdateDonationRequest) (*Donation, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Payment fields (status, orderId, paymentId) are owned by the payment
	// flow and never touched by a document update.
	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.DonorName != nil {
		updates["donor_name"] = *req.DonorName
	}
	if req.DonorEmail != nil {
		updates["donor_email"] = *req.DonorEmail
	}
	if req.DonorPhoneNumber != nil {
		updates["donor_phone_number"] = *req.DonorPhoneNumber
	}
	if req.PanNumber != nil {
		updates["pan_number"] = *req.PanNumber
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DonorAddress != nil {
		updates["donor_address"] = *req.DonorAddress
	}

	if len(updates) > 0 {
		if err := s.db.Model(d).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update donation: %w", err)
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id uint) error {
	result := s.db.Delete(&Donation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}
	return nil
}

// CreateOrder opens a gateway order for the donation. The gateway expects
// minor units, so the decimal amount is converted to paise. No donation
// state changes here; completion happens only after signature verification.
func (s *Service) CreateOrder(req *CreateOrderRequest) (*payment.Order, error) {
	if s.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	d, err := s.Get(req.DonationID)
	if err != nil {
		return nil, err
	}

	amount, err := resolveAmount(req.Amount, d)
	if err != nil {
		return nil, err
	}

	amountPaise := int64(math.Round(amount * 100))
	receipt := fmt.Sprintf("donation_%d_%d", d.ID, time.Now().Unix())

	return s.gateway.CreateOrder(amountPaise, receipt)
}

// VerifyPayment recomputes the callback signature and, on a match, marks
// the donation completed. A mismatch leaves the donation untouched.
func (s *Service) VerifyPayment(req *VerifyPaymentRequest) (*Donation, error) {
	d, err := s.Get(req.DonationID)
	if err != nil {
		return nil, err
	}

	if !payment.VerifySignature(s.cfg.RazorpayKeySecret, req.OrderID, req.PaymentID, req.Signature) {
		return nil, ErrSignatureMismatch
	}

	now := time.Now()
	method := MethodOnline
	updates := map[string]interface{}{
		"status":           StatusCompleted,
		"payment_id":       req.PaymentID,
		"order_id":         req.OrderID,
		"payment_method":   method,
		"transaction_date": now,
	}
	if err := s.db.Model(d).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return s.Get(d.ID)
}

// GenerateQR builds the UPI deep link for the donation and renders it as a
// PNG. The donation is parked as a pending UPI payment; completion is the
// separate, honor-system CompleteUPI call.
func (s *Service) GenerateQR(req *GenerateQRRequest) (*QRCodeResponse, error) {
	if s.cfg.UPIPayeeID == "" {
		return nil, ErrUPINotConfigured
	}

	d, err := s.Get(req.DonationID)
	if err != nil {
		return nil, err
	}
	if d.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	amount, err := resolveAmount(req.Amount, d)
	if err != nil {
		return nil, err
	}

	note := fmt.Sprintf("Donation #%d", d.ID)
	uri := payment.BuildUPIURI(s.cfg.UPIPayeeID, s.cfg.UPIPayeeName, amount, note)

	png, err := payment.QRCodePNG(uri, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	method := MethodUPI
	updates := map[string]interface{}{
		"payment_method": method,
		"status":         StatusPending,
		"amount":         amount,
	}
	if err := s.db.Model(d).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	return &QRCodeResponse{
		DonationID: d.ID,
		UpiURI:     uri,
		QRImage:    "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Amount:     amount,
	}, nil
}

// CompleteUPI records an unverified UPI payment against the donation.
func (s *Service) CompleteUPI(req *CompleteUPIRequest) (*Donation, error) {
	d, err := s.Get(req.DonationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	method := MethodUPI
	updates := map[string]interface{}{
		"status":             StatusCompleted,
		"payment_method":     method,
		"upi_transaction_id": req.UpiTransactionID,
		"transaction_date":   now,
	}
	if err := s.db.Model(d).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to complete UPI payment: %w", err)
	}
	return s.Get(d.ID)
}

// Summary aggregates donation counts and amounts for reporting.
func (s *Service) Summary() (*PaymentSummary, error) {
	summary := &PaymentSummary{
		ByStatus:         map[string]int64{},
		ByMethod:         map[string]int64{},
		AmountByCategory: map[string]float64{},
	}

	if err := s.db.Model(&Donation{}).Count(&summary.TotalDonations).Error; err != nil {
		return nil, err
	}

	var statusRows []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&Donation{}).
		Select("status, COUNT(*) AS count").Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		summary.ByStatus[row.Status] = row.Count
	}

	var methodRows []struct {
		PaymentMethod string
		Count         int64
	}
	if err := s.db.Model(&Donation{}).
		Select("payment_method, COUNT(*) AS count").
		Where("payment_method IS NOT NULL").Group("payment_method").
		Scan(&methodRows).Error; err != nil {
		return nil, err
	}
	for _, row := range methodRows {
		summary.ByMethod[row.PaymentMethod] = row.Count
	}

	var categoryRows []struct {
		Category string
		Total    float64
	}
	if err := s.db.Model(&Donation{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("status = ?", StatusCompleted).Group("category").
		Scan(&categoryRows).Error; err != nil {
		return nil, err
	}
	for _, row := range categoryRows {
		summary.AmountByCategory[row.Category] = row.Total
		summary.CompletedAmount += row.Total
	}

	return summary, nil
}

func resolveAmount(requested *float64, d *Donation) (float64, error) {
	if requested != nil && *requested > 0 {
		return *requested, nil
	}
	if d.Amount != nil && *d.Amount > 0 {
		return *d.Amount, nil
	}
	return 0, ErrAmountRequired
}
