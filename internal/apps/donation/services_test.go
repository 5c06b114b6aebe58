package donation

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGateway struct {
	amountPaise int64
	receipt     string
	order       *payment.Order
	err         error
}

func (f *fakeGateway) CreateOrder(amountPaise int64, receipt string) (*payment.Order, error) {
	f.amountPaise = amountPaise
	f.receipt = receipt
	return f.order, f.err
}

func newTestService(t *testing.T, gateway payment.GatewayClient) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cfg := &config.Config{
		RazorpayKeySecret: "rzp-test-secret",
		UPIPayeeID:        "temple@upi",
		UPIPayeeName:      "Temple Foundation",
	}
	return NewService(gdb, gateway, cfg), mock
}

func donationRow(id uint, status string, amount float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "category", "donor_name", "status", "amount"}).
		AddRow(id, "goshala", "Ravi", status, amount)
}

func TestCreateOrderConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{order: &payment.Order{OrderID: "order_abc", Amount: 25050, Currency: "INR"}}
	svc, mock := newTestService(t, gw)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusPending, 250.50))

	order, err := svc.CreateOrder(&CreateOrderRequest{DonationID: 3})
	require.NoError(t, err)

	assert.Equal(t, int64(25050), gw.amountPaise)
	assert.Contains(t, gw.receipt, "donation_3_")
	assert.Equal(t, "order_abc", order.OrderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrderWithoutAmount(t *testing.T) {
	gw := &fakeGateway{order: &payment.Order{}}
	svc, mock := newTestService(t, gw)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category", "donor_name", "status"}).
			AddRow(4, "goshala", "Ravi", StatusPending))

	_, err := svc.CreateOrder(&CreateOrderRequest{DonationID: 4})
	assert.ErrorIs(t, err, ErrAmountRequired)
}

func TestCreateOrderWithoutGateway(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.CreateOrder(&CreateOrderRequest{DonationID: 1})
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestVerifyPaymentCompletesOnValidSignature(t *testing.T) {
	svc, mock := newTestService(t, nil)

	sig := payment.ComputeSignature("rzp-test-secret", "order_abc", "pay_xyz")

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusPending, 250.50))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusCompleted, 250.50))

	d, err := svc.VerifyPayment(&VerifyPaymentRequest{
		DonationID: 3,
		OrderID:    "order_abc",
		PaymentID:  "pay_xyz",
		Signature:  sig,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, d.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusPending, 250.50))

	_, err := svc.VerifyPayment(&VerifyPaymentRequest{
		DonationID: 3,
		OrderID:    "order_abc",
		PaymentID:  "pay_xyz",
		Signature:  "deadbeef",
	})
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	// The donation row was never touched.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteUPIMarksDonationCompleted(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusPending, 250.50))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "donations" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "payment_method", "upi_transaction_id"}).
			AddRow(3, StatusCompleted, MethodUPI, "UPI123456"))

	d, err := svc.CompleteUPI(&CompleteUPIRequest{
		DonationID:       3,
		UpiTransactionID: "UPI123456",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, d.Status)
	require.NotNil(t, d.UpiTransactionID)
	assert.Equal(t, "UPI123456", *d.UpiTransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateQRRejectsCompletedDonation(t *testing.T) {
	svc, mock := newTestService(t, nil)

	mock.ExpectQuery(`SELECT \* FROM "donations"`).
		WillReturnRows(donationRow(3, StatusCompleted, 250.50))

	_, err := svc.GenerateQR(&GenerateQRRequest{DonationID: 3})
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}
