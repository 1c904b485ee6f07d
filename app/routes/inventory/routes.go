package inventory

import (
	"log"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(app *fiber.App) {
	web := app.Group("/inventory")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderInventoryPage)

	api := app.Group("/api/inventory")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetInventoryItemsAPI)
	api.Get("/:id", GetInventoryItemAPI)
	api.Post("/", CreateInventoryItemAPI)
	api.Put("/:id", UpdateInventoryItemAPI)
	api.Delete("/:id", DeleteInventoryItemAPI)
}

func renderInventoryPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	items, err := database.GetAllInventoryItems(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load inventory")
	}
	courses, err := database.GetAllCourses(db)
	if err != nil {
		log.Printf("Failed to load courses for inventory form: %v", err)
	}
	departments, err := database.GetAllDepartments(db)
	if err != nil {
		log.Printf("Failed to load departments for inventory form: %v", err)
	}

	return c.Render("inventory/index", fiber.Map{
		"Title":       "Inventory - CED Training Center",
		"CurrentPage": "inventory",
		"user":        user,
		"Items":       items,
		"Courses":     courses,
		"Departments": departments,
	})
}
