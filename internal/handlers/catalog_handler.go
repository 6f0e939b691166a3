package handlers

import (
	"github.com/fitmantra/fitmantra-backend/internal/catalog"
	"github.com/fitmantra/fitmantra-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	if category := c.Query("category"); category != "" {
		products := catalog.ProductsByCategory(catalog.Category(category))
		if products == nil {
			products = []catalog.Product{}
		}
		return c.JSON(products)
	}
	return c.JSON(catalog.Products)
}

func (h *CatalogHandler) GetProductBySlug(c *fiber.Ctx) error {
	product, ok := catalog.ProductBySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Product not found",
		})
	}
	return c.JSON(product)
}

func (h *CatalogHandler) ListPlans(c *fiber.Ctx) error {
	type planView struct {
		catalog.Plan
		AnnualPriceINR float64 `json:"annual_price_inr"`
	}

	plans := make([]planView, 0, len(catalog.Plans))
	for _, p := range catalog.Plans {
		plans = append(plans, planView{Plan: p, AnnualPriceINR: catalog.AnnualPriceINR(p)})
	}
	return c.JSON(plans)
}
