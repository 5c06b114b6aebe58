package donation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seva-foundation/temple-backend/internal/config"
	"github.com/seva-foundation/temple-backend/internal/payment"
	"gorm.io/gorm"
)

type App struct {
	handler *Handler
}

func New(db *gorm.DB, gateway payment.GatewayClient, cfg *config.Config) *App {
	return &App{handler: NewHandler(NewService(db, gateway, cfg))}
}

func (a *App) ID() string {
	return "donation"
}

func (a *App) Models() []interface{} {
	return []interface{}{&Donation{}}
}

func (a *App) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	// Donation submission and the payment flow are driven by the public
	// website; donor records themselves are admin-only.
	pub := public.Group("/Donation")
	pub.Post("/", a.handler.Create)
	pub.Post("/create-order", a.handler.CreateOrder)
	pub.Post("/verify-payment", a.handler.VerifyPayment)
	pub.Post("/generate-qrcode", a.handler.GenerateQR)
	pub.Post("/complete-upi-payment", a.handler.CompleteUPI)

	adm := admin.Group("/Donation")
	adm.Get("/payment/summary", a.handler.Summary)
	adm.Get("/", a.handler.List)
	adm.Get("/:id", a.handler.Get)
	adm.Put("/:id", a.handler.Update)
	adm.Delete("/:id", a.handler.Delete)
}
