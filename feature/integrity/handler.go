package integrity

import (
	"tataru/core/logger"
	"tataru/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.CacheReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/cache", h.HandleCacheCheck)
	group.Get("/backend", h.HandleBackendCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks cached records (keys, names, recipe references, cycles) and the persistence backend.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	return c.JSON(h.service.Report(c.Context()))
}

// HandleCacheCheck checks cached records and optionally fetches missing ingredients.
// @Summary Check Cache
// @Description Checks record keys, names, dangling recipe ingredients and recipe cycles. Optionally fetches missing ingredients.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fetch missing ingredients"
// @Success 200 {object} checks.CacheReport "Cache Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/cache [get]
func (h *Handler) HandleCacheCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report := h.service.CheckCache()
	missing := report.MissingIngredients()
	if len(missing) == 0 || !fix {
		if len(missing) > 0 {
			l.Warn("Dangling ingredients detected", zap.Ints("missing", missing))
		}
		return c.JSON(report)
	}

	l.Info("Attempting to fetch missing ingredients", zap.Ints("missing", missing))
	fixed, err := h.service.FixDangling(c.Context(), missing)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch missing ingredients",
			"details": err.Error(),
			"fixed":   fixed,
			"missing": missing,
		})
	}
	return c.JSON(fiber.Map{
		"status": "fixed",
		"fixed":  fixed,
	})
}

// HandleBackendCheck checks and optionally repairs the persistence backend.
// @Summary Check Backend
// @Description Checks the database schema or the snapshot bucket, depending on the configured backend. Optionally migrates tables or creates the bucket.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Repair the backend"
// @Success 200 {object} BackendReport "Backend Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/backend [get]
func (h *Handler) HandleBackendCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckBackend(c.Context())
	if err != nil {
		l.Error("Backend check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Status != "ok" && fix {
		l.Info("Attempting to repair backend", zap.String("backend", report.Backend))
		if err := h.service.FixBackend(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to repair backend",
				"details": err.Error(),
			})
		}
		if report, err = h.service.CheckBackend(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(report)
}
