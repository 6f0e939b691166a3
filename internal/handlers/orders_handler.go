package handlers

import (
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/fitmantra/fitmantra-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrdersHandler struct {
	db *gorm.DB
}

func NewOrdersHandler(db *gorm.DB) *OrdersHandler {
	return &OrdersHandler{db: db}
}

// ListMine returns the authenticated user's order history.
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var orders []models.Order
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load orders",
		})
	}

	return c.JSON(orders)
}

// ListAll is the admin view over every order.
func (h *OrdersHandler) ListAll(c *fiber.Ctx) error {
	var orders []models.Order
	if err := h.db.Order("created_at DESC").Limit(200).Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load orders",
		})
	}

	return c.JSON(orders)
}

// ListSubscriptions is the admin view over subscription purchases.
func (h *OrdersHandler) ListSubscriptions(c *fiber.Ctx) error {
	var subs []models.Subscription
	if err := h.db.Order("created_at DESC").Limit(200).Find(&subs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load subscriptions",
		})
	}

	return c.JSON(subs)
}
