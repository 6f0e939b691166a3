package handlers

import (
	"errors"
	"log/slog"

	"github.com/fitmantra/fitmantra-backend/internal/checkout"
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	checkoutService *checkout.Service
}

func NewCheckoutHandler(checkoutService *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// PlaceOrder runs the shop checkout. Validation problems come back as a
// per-field map; an empty cart redirects to the cart view instead of
// erroring.
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var form checkout.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	confirmation, err := h.checkoutService.PlaceOrder(userID, form)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.RedirectResponse{
				Error:    true,
				Message:  "Your cart is empty",
				Redirect: "/cart",
			})
		}
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Error:   true,
				Message: "Please fix the highlighted fields",
				Fields:  vErr.Fields,
			})
		}
		slog.Error("checkout failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Checkout failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(confirmation)
}
