package staff

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

type staffRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	JoiningDate  string `json:"joining_date" validate:"required"`
	MobileNumber string `json:"mobile_number"`
	Gender       string `json:"gender"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`
	Address      string `json:"address"`
}

func (r staffRequest) toModel() (*models.Staff, []validation.FieldError) {
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

	return &models.Staff{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		JoiningDate:  date,
		MobileNumber: r.MobileNumber,
		Gender:       r.Gender,
		Designation:  r.Designation,
		Department:   r.Department,
		Address:      r.Address,
	}, nil
}

func GetStaffListAPI(c *fiber.Ctx) error {
	staffList, err := database.GetAllStaff(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load staff"})
	}
	return c.JSON(staffList)
}

func GetStaffAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	s, err := database.GetStaffByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load staff"})
	}
	return c.JSON(s)
}

func CreateStaffAPI(c *fiber.Ctx) error {
	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateStaff(config.GetDB(), s); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create staff"})
	}
	return c.Status(201).JSON(s)
}

func UpdateStaffAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	var req staffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	s, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	s.ID = id

	if err := database.UpdateStaff(config.GetDB(), s); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Staff not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update staff"})
	}
	return c.JSON(s)
}

func DeleteStaffAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid staff ID"})
	}

	if err := database.DeleteStaff(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete staff"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
