package lookup

import (
	"strconv"

	"tataru/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for item lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/search", h.HandleSearch)
	group.Get("/price", h.HandlePrice)
	group.Put("/:id/emoji", h.HandleSetEmoji)
}

// HandleSearch resolves a name or ID to an item.
// @Summary Search Item
// @Description Resolve a name (fuzzy) or numeric ID to a cached or freshly fetched item.
// @Tags items
// @Produce json
// @Param q query string true "Item name or ID"
// @Success 200 {object} lookup.Result "Resolved item"
// @Failure 404 {object} map[string]any "Item not found"
// @Failure 422 {object} map[string]any "No match, with suggestions"
// @Failure 503 {object} map[string]any "Source unavailable"
// @Router /items/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	res, err := h.service.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.fail(c, l, "Search failed", err)
	}
	return c.JSON(res)
}

// HandlePrice resolves an item and refreshes its market price.
// @Summary Item Price
// @Description Resolve an item and fetch its current market price.
// @Tags items
// @Produce json
// @Param q query string true "Item name or ID"
// @Success 200 {object} lookup.Result "Item with refreshed price"
// @Failure 404 {object} map[string]any "Item or market data not found"
// @Failure 422 {object} map[string]any "No match, with suggestions"
// @Failure 503 {object} map[string]any "Source unavailable"
// @Router /items/price [get]
func (h *Handler) HandlePrice(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	res, err := h.service.Price(c.UserContext(), c.Query("q"))
	if err != nil {
		return h.fail(c, l, "Price lookup failed", err)
	}
	return c.JSON(res)
}

type emojiRequest struct {
	Emoji string `json:"emoji"`
}

// HandleSetEmoji sets the emoji annotation of a cached item.
// @Summary Set Emoji
// @Description Set the emoji shortcode shown next to an item.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body emojiRequest true "Emoji shortcode"
// @Success 200 {object} models.Item "Updated item"
// @Failure 400 {object} map[string]any "Invalid emoji"
// @Failure 404 {object} map[string]any "Item not cached"
// @Router /items/{id}/emoji [put]
func (h *Handler) HandleSetEmoji(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid item id"})
	}
	var req emojiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	it, err := h.service.SetEmoji(c.UserContext(), id, req.Emoji)
	if err != nil {
		return h.fail(c, l, "Set emoji failed", err)
	}
	return c.JSON(it)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Info(msg, zap.Error(err))
	}
	return c.Status(status).JSON(ErrorBody(err))
}
