package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bloom/core/config"
	"bloom/core/database"
	"bloom/core/kv"
	"bloom/core/loader"
	"bloom/core/logger"
	"bloom/core/middleware/auth"
	"bloom/core/middleware/rayid"
	"bloom/core/storage"

	"bloom/feature/calendar"
	"bloom/feature/coach"
	"bloom/feature/journal"
	"bloom/feature/library"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "bloom/docs/swagger"
)

// @title Bloom API
// @version 1.0
// @description Cycle-aware fitness and wellness API.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the wellness server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		// The journal, favorites and settings all live here; sqlite is the
		// default so a bare start works without any setup.
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		settings, err := kv.NewStore(db)
		if err != nil {
			logg.Fatal("Failed to initialize settings store", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage (Optional)
		// The library feature needs the bucket; everything else runs
		// without it.
		var store storage.Client
		if client, err := storage.NewClient(cfg.Storage); err != nil {
			logg.Warn("Optional storage connection failed, library disabled", zap.Error(err))
		} else {
			store = client
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		journalFeature, err := journal.NewFeature(db, settings, logg)
		if err != nil {
			logg.Fatal("Failed to create journal feature", zap.Error(err))
		}
		j := journalFeature.Service()

		libraryFeature, err := library.NewFeature(db, store, cfg.Storage.Bucket, logg)
		if err != nil {
			logg.Fatal("Failed to create library feature", zap.Error(err))
		}

		coachFeature, err := coach.NewFeature(cmd.Context(), cfg.Coach, j, logg)
		if err != nil {
			logg.Fatal("Failed to create coach feature", zap.Error(err))
		}

		mgr.Register(journalFeature)
		mgr.Register(calendar.NewFeature(j, logg))
		mgr.Register(libraryFeature)
		mgr.Register(coachFeature)

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		// Empty key keeps the server in open local mode.
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Names()))

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Bool("protected", cfg.Server.Protected()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
