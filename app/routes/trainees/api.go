package trainees

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

// traineeRequest is the typed form input for adding or editing a trainee.
// Dates arrive as YYYY-MM-DD strings and are validated before anything
// touches the store.
type traineeRequest struct {
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	RegistrationDate string `json:"registration_date" validate:"required"`
	Department       string `json:"department" validate:"required"`
	Gender           string `json:"gender" validate:"required"`
	MobileNumber     string `json:"mobile_number"`
	Course           string `json:"course" validate:"required"`
	Address          string `json:"address"`
}

func (r traineeRequest) toModel() (*models.Trainee, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}

	date, err := validation.Date(r.RegistrationDate)
	if err != nil {
		return nil, []validation.FieldError{{
			Field: "registration_date",
			Error: "must be a date in YYYY-MM-DD format",
		}}
	}

	return &models.Trainee{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		RegistrationDate: date,
		Department:       r.Department,
		Gender:           r.Gender,
		MobileNumber:     r.MobileNumber,
		Course:           r.Course,
		Address:          r.Address,
	}, nil
}

func GetTraineesAPI(c *fiber.Ctx) error {
	trainees, err := database.GetAllTrainees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trainees"})
	}
	return c.JSON(trainees)
}

func GetTraineeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid trainee ID"})
	}

	trainee, err := database.GetTraineeByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Trainee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load trainee"})
	}
	return c.JSON(trainee)
}

func CreateTraineeAPI(c *fiber.Ctx) error {
	var req traineeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	trainee, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateTrainee(config.GetDB(), trainee); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create trainee"})
	}
	return c.Status(201).JSON(trainee)
}

func UpdateTraineeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid trainee ID"})
	}

	var req traineeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	trainee, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	trainee.ID = id

	if err := database.UpdateTrainee(config.GetDB(), trainee); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Trainee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update trainee"})
	}
	return c.JSON(trainee)
}

func DeleteTraineeAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid trainee ID"})
	}

	if err := database.DeleteTrainee(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete trainee"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
