package customer

import (
	"log"
	"strings"

	"poultry-backend/internal/audit"
	"poultry-backend/internal/auth"
	"poultry-backend/internal/database"
	"poultry-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Place string `json:"place"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Place *string `json:"place"`
}

// The outstanding balance accepts either representation the clients use:
// a single signed number, or magnitude plus debit/credit type. Both
// collapse to the same stored form.
type UpdateBalanceRequest struct {
	Balance *float64 `json:"balance"` // signed
	Amount  *float64 `json:"amount"`  // magnitude, with Type
	Type    string   `json:"type"`    // "debit" or "credit"
}

type CustomerResponse struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Place             string  `json:"place"`
	OutstandingAmount float64 `json:"outstanding_amount"`
	OutstandingType   string  `json:"outstanding_type"`
	Balance           float64 `json:"balance"` // signed form
}

func toResponse(cu models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                cu.ID,
		Name:              cu.Name,
		Phone:             cu.Phone,
		Place:             cu.Place,
		OutstandingAmount: cu.OutstandingAmount,
		OutstandingType:   string(cu.OutstandingType),
		Balance:           cu.SignedBalance(),
	}
}

// POST /api/customers
func CreateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		cu := models.Customer{Name: body.Name, Phone: body.Phone, Place: body.Place}
		if err := database.DB.Create(&cu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create customer")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": toResponse(cu)})
	}
}

// GET /api/customers
func ListCustomersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var customers []models.Customer
		if err := database.DB.Order("name asc").Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list customers")
		}

		resp := make([]CustomerResponse, 0, len(customers))
		for _, cu := range customers {
			resp = append(resp, toResponse(cu))
		}
		return c.JSON(fiber.Map{"success": true, "data": resp})
	}
}

// GET /api/customers/:id - the profile the sale form fetches the prior
// balance from.
func GetCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cu models.Customer
		if err := database.DB.First(&cu, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}
		return c.JSON(fiber.Map{"success": true, "data": toResponse(cu)})
	}
}

// PUT /api/customers/:id
func UpdateCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cu models.Customer
		if err := database.DB.First(&cu, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			cu.Name = name
		}
		if body.Phone != nil {
			cu.Phone = *body.Phone
		}
		if body.Place != nil {
			cu.Place = *body.Place
		}

		if err := database.DB.Save(&cu).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update customer")
		}

		return c.JSON(fiber.Map{"success": true, "data": toResponse(cu)})
	}
}

// DELETE /api/customers/:id
func DeleteCustomerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var count int64
		database.DB.Model(&models.Sale{}).Where("customer_id = ?", c.Params("id")).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Customer has sales and cannot be deleted")
		}

		if err := database.DB.Delete(&models.Customer{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete customer")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// PUT /api/customers/:id/outstanding-balance
func UpdateBalanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var cu models.Customer
		if err := database.DB.First(&cu, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Customer not found")
		}

		var body UpdateBalanceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		before := toResponse(cu)

		switch {
		case body.Balance != nil:
			cu.SetSignedBalance(*body.Balance)
		case body.Amount != nil:
			if *body.Amount < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "amount must not be negative")
			}
			bt := models.BalanceType(body.Type)
			if bt != models.BalanceTypeDebit && bt != models.BalanceTypeCredit {
				return fiber.NewError(fiber.StatusBadRequest, "type must be 'debit' or 'credit'")
			}
			cu.OutstandingAmount = *body.Amount
			cu.OutstandingType = bt
		default:
			return fiber.NewError(fiber.StatusBadRequest, "balance or amount is required")
		}

		if err := database.DB.Model(&models.Customer{}).Where("id = ?", cu.ID).Updates(map[string]any{
			"outstanding_amount": cu.OutstandingAmount,
			"outstanding_type":   cu.OutstandingType,
		}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update balance")
		}

		userID, _ := auth.CurrentUserID(c)
		if err := audit.WriteLog(audit.LogOptions{
			UserID:      userID,
			EntityType:  "customer_balance",
			EntityID:    cu.ID,
			Action:      models.AuditActionUpdate,
			Description: "Outstanding balance updated: " + cu.Name,
			Before:      before,
			After:       toResponse(cu),
		}); err != nil {
			log.Printf("[WARN] audit log write failed: %v", err)
		}

		return c.JSON(fiber.Map{"success": true, "data": toResponse(cu)})
	}
}
