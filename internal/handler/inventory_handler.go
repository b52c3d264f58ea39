package handler

import (
	"go-torteria-api/internal/model"
	"go-torteria-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// Helper to pick the admin identity from the JWT context (set by auth middleware)
func getUserEmail(c *fiber.Ctx) string {
	userEmail := c.Locals("user_email")
	if userEmail == nil {
		return "system"
	}
	return userEmail.(string)
}

// Helper to parse UUID path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

func (h *InventoryHandler) GetIngredients(c *fiber.Ctx) error {
	ingredients, err := h.service.GetAllIngredients()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(ingredients)
}

func (h *InventoryHandler) GetLowStockIngredients(c *fiber.Ctx) error {
	ingredients, err := h.service.GetLowStockIngredients()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(ingredients)
}

func (h *InventoryHandler) SearchIngredients(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Query parameter 'q' is required"})
	}

	ingredients, err := h.service.SearchIngredients(query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(ingredients)
}

func (h *InventoryHandler) CreateIngredient(c *fiber.Ctx) error {
	var ingredient model.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateIngredient(&ingredient, getUserEmail(c)); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Ingredient created", "data": ingredient})
}

func (h *InventoryHandler) UpdateIngredient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	var ingredient model.Ingredient
	if err := c.BodyParser(&ingredient); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateIngredient(id, &ingredient, getUserEmail(c))
	if err != nil {
		if err == service.ErrIngredientNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Ingredient updated", "data": updated})
}

// SetStockRequest is the body of the quick stock adjustment
type SetStockRequest struct {
	StockQuantity float64 `json:"stock_quantity"`
}

func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	var req SetStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.SetStock(id, req.StockQuantity, getUserEmail(c))
	if err != nil {
		if err == service.ErrIngredientNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Stock updated", "data": updated})
}

func (h *InventoryHandler) DeleteIngredient(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ingredient ID"})
	}

	if err := h.service.DeleteIngredient(id); err != nil {
		if err == service.ErrIngredientNotFound {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Ingredient deleted"})
}
