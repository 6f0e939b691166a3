package handlers

import (
	"github.com/fitmantra/fitmantra-backend/internal/cart"
	"github.com/fitmantra/fitmantra-backend/internal/catalog"
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/fitmantra/fitmantra-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// CartHandler routes every cart mutation through the cart service; nothing
// else touches the stored collection.
type CartHandler struct {
	carts *cart.Service
}

func NewCartHandler(carts *cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func cartResponse(c *cart.Cart) dto.CartResponse {
	return dto.CartResponse{
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		TotalINR:  c.TotalINR(),
	}
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	return c.JSON(cartResponse(h.carts.Load(userID.String())))
}

func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Product not found",
		})
	}

	updated, err := h.carts.AddItem(userID.String(), product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update cart",
		})
	}

	return c.JSON(cartResponse(updated))
}

func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	updated, err := h.carts.UpdateQuantity(userID.String(), c.Params("id"), req.Quantity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update cart",
		})
	}

	return c.JSON(cartResponse(updated))
}

func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	updated, err := h.carts.RemoveItem(userID.String(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update cart",
		})
	}

	return c.JSON(cartResponse(updated))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if err := h.carts.Clear(userID.String()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to clear cart",
		})
	}

	return c.JSON(cartResponse(h.carts.Load(userID.String())))
}
