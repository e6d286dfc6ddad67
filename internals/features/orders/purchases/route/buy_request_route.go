package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	buyController "bukuku_backend/internals/features/orders/purchases/controller"
)

func PurchaseRoutes(app *fiber.App, db *gorm.DB) {
	ctl := buyController.NewBuyRequestController(db)

	app.Post("/api/buy-book", ctl.Create)
	app.Get("/api/sells", ctl.List)
}
