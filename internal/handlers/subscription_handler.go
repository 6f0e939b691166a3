package handlers

import (
	"errors"
	"log/slog"

	"github.com/fitmantra/fitmantra-backend/internal/checkout"
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/fitmantra/fitmantra-backend/internal/entitlement"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type SubscriptionHandler struct {
	checkoutService *checkout.Service
	entitlements    *entitlement.Service
}

func NewSubscriptionHandler(checkoutService *checkout.Service, entitlements *entitlement.Service) *SubscriptionHandler {
	return &SubscriptionHandler{checkoutService: checkoutService, entitlements: entitlements}
}

// Status returns the user's active tier.
func (h *SubscriptionHandler) Status(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	return c.JSON(dto.SubscriptionStatusResponse{
		Tier: string(h.entitlements.Tier(userID.String())),
	})
}

// CheckFeature answers the gating question pages ask before rendering
// protected content.
func (h *SubscriptionHandler) CheckFeature(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	key := c.Params("key")
	if _, ok := h.entitlements.Registry().AllowedTiers(key); !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Unknown feature",
		})
	}

	return c.JSON(dto.FeatureAccessResponse{
		Feature:    key,
		Tier:       string(h.entitlements.Tier(userID.String())),
		Accessible: h.entitlements.IsFeatureAccessible(userID.String(), key),
	})
}

// Subscribe runs the subscription checkout: payment validation, simulated
// charge, tier activation.
func (h *SubscriptionHandler) Subscribe(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req struct {
		dto.SubscribeRequest
		Payment checkout.PaymentInput `json:"payment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	confirmation, err := h.checkoutService.Subscribe(
		userID, req.PlanID, checkout.BillingCycle(req.BillingCycle), req.Payment)
	if err != nil {
		var vErr *checkout.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Error:   true,
				Message: "Please fix the highlighted fields",
				Fields:  vErr.Fields,
			})
		}
		slog.Error("subscription checkout failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Subscription checkout failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(confirmation)
}
