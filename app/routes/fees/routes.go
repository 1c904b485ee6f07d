package fees

import (
	"log"
	"time"

	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	web := app.Group("/fees")
	web.Use(auth.AuthMiddleware)
	web.Get("/", renderFeesPage)
	web.Get("/receipt/:id", renderReceiptPage)

	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetFeesAPI)
	api.Get("/:id", GetFeeAPI)
	api.Post("/", CreateFeeAPI)
	api.Put("/:id", UpdateFeeAPI)
	api.Delete("/:id", DeleteFeeAPI)
}

func renderFeesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	feeList, err := database.GetAllFees(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fees")
	}
	trainees, err := database.GetAllTrainees(db)
	if err != nil {
		log.Printf("Failed to load trainees for fee form: %v", err)
	}
	courses, err := database.GetAllCourses(db)
	if err != nil {
		log.Printf("Failed to load courses for fee form: %v", err)
	}
	departments, err := database.GetAllDepartments(db)
	if err != nil {
		log.Printf("Failed to load departments for fee form: %v", err)
	}

	return c.Render("fees/index", fiber.Map{
		"Title":       "Fees Collection - CED Training Center",
		"CurrentPage": "fees",
		"user":        user,
		"Fees":        feeList,
		"Trainees":    trainees,
		"Courses":     courses,
		"Departments": departments,
	})
}

func renderReceiptPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	fee, err := database.GetFeeByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return fiber.ErrNotFound
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load fee record")
	}

	return c.Render("fees/receipt", fiber.Map{
		"Title":       "Payment Receipt - CED Training Center",
		"CurrentPage": "fees",
		"user":        user,
		"Fee":         fee,
		"CurrentDate": time.Now().Format("02/01/2006"),
	})
}
