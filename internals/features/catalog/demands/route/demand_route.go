package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	demandController "bukuku_backend/internals/features/catalog/demands/controller"
)

func DemandRoutes(app *fiber.App, db *gorm.DB) {
	ctl := demandController.NewDemandController(db)

	app.Get("/api/demands", ctl.List)
	app.Post("/api/add-demand", ctl.Create)
	app.Post("/api/approve-book-add", ctl.Approve)
	app.Post("/api/reject-book-add", ctl.Reject)
}
