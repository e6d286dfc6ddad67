// file: internals/route/routes.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bukuku_backend/internals/configs"
	bookRoute "bukuku_backend/internals/features/catalog/books/route"
	demandRoute "bukuku_backend/internals/features/catalog/demands/route"
	purchaseRoute "bukuku_backend/internals/features/orders/purchases/route"
	authorRoute "bukuku_backend/internals/features/users/author/route"
	readerRoute "bukuku_backend/internals/features/users/reader/route"
	userRoute "bukuku_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"Hello": "World"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		httpStatus := fiber.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			httpStatus = fiber.StatusServiceUnavailable
		}
		return c.Status(httpStatus).JSON(fiber.Map{
			"database": dbStatus,
			"uptime":   time.Since(startTime).Seconds(),
		})
	})

	// ===================== IDENTITAS =====================
	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up ReaderRoutes...")
	readerRoute.ReaderRoutes(app, db)

	log.Println("[INFO] Setting up AuthorRoutes...")
	authorRoute.AuthorRoutes(app, db)

	// ===================== KATALOG & WORKFLOW =====================
	log.Println("[INFO] Setting up BookRoutes...")
	bookRoute.BookRoutes(app, db, configs.UploadDir)

	log.Println("[INFO] Setting up DemandRoutes...")
	demandRoute.DemandRoutes(app, db)

	// ===================== PEMBELIAN =====================
	log.Println("[INFO] Setting up PurchaseRoutes...")
	purchaseRoute.PurchaseRoutes(app, db)
}
