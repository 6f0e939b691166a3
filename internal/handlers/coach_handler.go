package handlers

import (
	"errors"
	"log/slog"

	"github.com/fitmantra/fitmantra-backend/internal/ai"
	"github.com/fitmantra/fitmantra-backend/internal/coach"
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/fitmantra/fitmantra-backend/internal/entitlement"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CoachHandler fronts the four AI coach flows. Every endpoint checks the
// entitlement engine for its feature key before doing anything else and
// returns a locked/upsell payload when the tier doesn't qualify.
type CoachHandler struct {
	coachService *coach.Service
	entitlements *entitlement.Service
}

func NewCoachHandler(coachService *coach.Service, entitlements *entitlement.Service) *CoachHandler {
	return &CoachHandler{coachService: coachService, entitlements: entitlements}
}

func (h *CoachHandler) gate(c *fiber.Ctx, featureKey string) (uuid.UUID, error) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return uuid.Nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if !h.entitlements.IsFeatureAccessible(userID.String(), featureKey) {
		return uuid.Nil, c.Status(fiber.StatusForbidden).JSON(dto.LockedResponse{
			Error:   true,
			Locked:  true,
			Feature: featureKey,
			Message: "Upgrade your plan to unlock this feature",
			Upgrade: "/pricing",
		})
	}

	return userID, nil
}

func aiError(c *fiber.Ctx, userID uuid.UUID, action string, err error) error {
	slog.Error("AI flow failed", "action", action, "user_id", userID, "error", err)
	message := "Something went wrong. Please try again."
	if errors.Is(err, ai.ErrNoResponse) {
		message = "No response from the AI coach. Please try again."
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func (h *CoachHandler) WorkoutPlan(c *fiber.Ctx) error {
	userID, err := h.gate(c, entitlement.FeatureWorkoutPlan)
	if err != nil || userID == uuid.Nil {
		return err
	}

	var req coach.WorkoutPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.coachService.WorkoutPlan(req)
	if err != nil {
		if errors.Is(err, coach.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return aiError(c, userID, "workout_plan", err)
	}

	return c.JSON(resp)
}

func (h *CoachHandler) NutritionPlan(c *fiber.Ctx) error {
	userID, err := h.gate(c, entitlement.FeatureNutritionPlan)
	if err != nil || userID == uuid.Nil {
		return err
	}

	var req coach.NutritionPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.coachService.NutritionPlan(req)
	if err != nil {
		if errors.Is(err, coach.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return aiError(c, userID, "nutrition_plan", err)
	}

	return c.JSON(resp)
}

func (h *CoachHandler) Chat(c *fiber.Ctx) error {
	userID, err := h.gate(c, entitlement.FeatureCoachChat)
	if err != nil || userID == uuid.Nil {
		return err
	}

	var req coach.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.coachService.Chat(req)
	if err != nil {
		if errors.Is(err, coach.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Message is required",
			})
		}
		return aiError(c, userID, "coach_chat", err)
	}

	return c.JSON(resp)
}

func (h *CoachHandler) FormAnalysis(c *fiber.Ctx) error {
	userID, err := h.gate(c, entitlement.FeatureFormAnalysis)
	if err != nil || userID == uuid.Nil {
		return err
	}

	var req coach.FormAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if len(req.ImageData) > 3*1024*1024 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image data too large. Maximum 3MB base64.",
		})
	}

	resp, err := h.coachService.FormAnalysis(req)
	if err != nil {
		if errors.Is(err, coach.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return aiError(c, userID, "form_analysis", err)
	}

	return c.JSON(resp)
}
