package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tataru/core/loader"
	"tataru/core/logger"
	"tataru/core/middleware/auth"
	"tataru/core/middleware/rayid"
	"tataru/feature/integrity"
	"tataru/feature/lookup"
	"tataru/feature/recipe"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "tataru/docs/swagger"
)

// @title Tataru API
// @version 1.0
// @description Item search, market prices and crafting trees for chat bots.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close(context.Background())
		zap.ReplaceGlobals(a.logger)

		app, err := newServer(a)
		if err != nil {
			return err
		}

		go func() {
			a.logger.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				a.logger.Error("Server stopped", zap.Error(err))
			}
		}()

		// Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		a.logger.Info("Shutting down server...")
		return app.ShutdownWithTimeout(a.cfg.Server.ShutdownTimeout())
	},
}

// newServer builds the fiber app with middleware and all features loaded.
func newServer(a *app) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager()
	mgr.Register(lookup.NewFeature(a.lookup))
	mgr.Register(recipe.NewFeature(a.recipe))
	mgr.Register(integrity.NewFeature(a.integrity))

	// RayID first so that every log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(a.logger, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
