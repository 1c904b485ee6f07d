package facilitators

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

type facilitatorRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	JoiningDate  string `json:"joining_date" validate:"required"`
	MobileNumber string `json:"mobile_number"`
	Gender       string `json:"gender" validate:"required"`
	Course       string `json:"course"`
	Department   string `json:"department" validate:"required"`
}

func (r facilitatorRequest) toModel() (*models.Facilitator, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}

	date, err := validation.Date(r.JoiningDate)
	if err != nil {
		return nil, []validation.FieldError{{
			Field: "joining_date",
			Error: "must be a date in YYYY-MM-DD format",
		}}
	}

	return &models.Facilitator{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		JoiningDate:  date,
		MobileNumber: r.MobileNumber,
		Gender:       r.Gender,
		Course:       r.Course,
		Department:   r.Department,
	}, nil
}

func GetFacilitatorsAPI(c *fiber.Ctx) error {
	facilitators, err := database.GetAllFacilitators(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load facilitators"})
	}
	return c.JSON(facilitators)
}

func GetFacilitatorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid facilitator ID"})
	}

	f, err := database.GetFacilitatorByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Facilitator not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load facilitator"})
	}
	return c.JSON(f)
}

func CreateFacilitatorAPI(c *fiber.Ctx) error {
	var req facilitatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	f, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateFacilitator(config.GetDB(), f); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create facilitator"})
	}
	return c.Status(201).JSON(f)
}

func UpdateFacilitatorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid facilitator ID"})
	}

	var req facilitatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	f, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	f.ID = id

	if err := database.UpdateFacilitator(config.GetDB(), f); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Facilitator not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update facilitator"})
	}
	return c.JSON(f)
}

func DeleteFacilitatorAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid facilitator ID"})
	}

	if err := database.DeleteFacilitator(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete facilitator"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
