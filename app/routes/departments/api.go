package departments

import (
	"github.com/Halalsolutions/ced-udus-erp/app/config"
	"github.com/Halalsolutions/ced-udus-erp/app/database"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/Halalsolutions/ced-udus-erp/app/validation"
	"github.com/gofiber/fiber/v2"
)

type departmentRequest struct {
	DepartmentName string `json:"department_name" validate:"required"`
	DepartmentHead string `json:"department_head"`
	MobileNumber   string `json:"mobile_number"`
	Email          string `json:"email" validate:"omitempty,email"`
}

func (r departmentRequest) toModel() (*models.Department, []validation.FieldError) {
	if fields := validation.Struct(r); fields != nil {
		return nil, fields
	}
	return &models.Department{
		DepartmentName: r.DepartmentName,
		DepartmentHead: r.DepartmentHead,
		MobileNumber:   r.MobileNumber,
		Email:          r.Email,
	}, nil
}

func GetDepartmentsAPI(c *fiber.Ctx) error {
	departments, err := database.GetAllDepartments(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load departments"})
	}
	return c.JSON(departments)
}

func GetDepartmentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	d, err := database.GetDepartmentByID(config.GetDB(), id)
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load department"})
	}
	return c.JSON(d)
}

func CreateDepartmentAPI(c *fiber.Ctx) error {
	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	d, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateDepartment(config.GetDB(), d); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create department"})
	}
	return c.Status(201).JSON(d)
}

func UpdateDepartmentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	var req departmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	d, fields := req.toModel()
	if fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	d.ID = id

	if err := database.UpdateDepartment(config.GetDB(), d); err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update department"})
	}
	return c.JSON(d)
}

func DeleteDepartmentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid department ID"})
	}

	if err := database.DeleteDepartment(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete department"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
