package recipe

import (
	"errors"

	"tataru/core/logger"
	"tataru/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recipes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipe routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/recipes", h.HandleRecipe)
}

// HandleRecipe expands the recipe of an item.
// @Summary Item Recipe
// @Description Resolve an item and expand its ingredient tree. full=true expands craftable ingredients recursively.
// @Tags recipes
// @Produce json
// @Param q query string true "Item name or ID"
// @Param full query bool false "Expand craftable ingredients"
// @Param amount query int false "Number of items wanted"
// @Success 200 {object} recipe.Report "Ingredient tree and materials"
// @Failure 400 {object} map[string]any "Empty query or amount above 9999"
// @Failure 404 {object} map[string]any "Item not found or not craftable"
// @Failure 409 {object} map[string]any "Cyclic recipe data"
// @Failure 422 {object} map[string]any "No match, with suggestions"
// @Failure 503 {object} map[string]any "Source unavailable"
// @Router /recipes [get]
func (h *Handler) HandleRecipe(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := Options{
		SelfReliance: c.QueryBool("full", false),
		Amount:       c.QueryInt("amount", 1),
	}
	if err := opts.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(lookup.ErrorBody(err))
	}

	report, err := h.service.Recipe(c.UserContext(), c.Query("q"), opts)
	if err != nil {
		status := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Recipe lookup failed", zap.Error(err))
		} else if errors.Is(err, ErrCyclicRecipe) {
			l.Warn("Recipe data contains a cycle", zap.Error(err))
		}
		return c.Status(status).JSON(lookup.ErrorBody(err))
	}
	return c.JSON(report)
}

// StatusFor maps recipe and lookup errors to HTTP statuses.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrCyclicRecipe):
		return fiber.StatusConflict
	case errors.Is(err, ErrNoRecipe):
		return fiber.StatusNotFound
	default:
		return lookup.StatusFor(err)
	}
}
