package cmd

import (
	"fmt"
	"log"

	"bloom/core/config"
	"bloom/core/database"
	"bloom/core/logger"
	"bloom/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the local installation",
	Long: `Checks database connectivity and schema, storage reachability and
coach configuration, and prints one line per check.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		report := func(name string, ok bool, detail string) {
			status := "ok"
			if !ok {
				status = "FAIL"
			}
			fmt.Printf("%-24s %-4s %s\n", name, status, detail)
		}

		// Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			report("database", false, err.Error())
		} else {
			report("database", true, cfg.Database.Driver)
			for _, table := range []string{"log_entries", "settings", "favorites"} {
				if !database.HasTable(db, table) {
					report("table "+table, false, "missing (created on first start)")
					continue
				}
				columns, err := database.GetTableColumns(db, table)
				if err != nil {
					report("table "+table, false, err.Error())
					continue
				}
				report("table "+table, true, fmt.Sprintf("%d columns", len(columns)))
			}
		}

		// Storage
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			report("storage", false, err.Error())
		} else {
			exists, err := client.BucketExists(cmd.Context(), cfg.Storage.Bucket)
			switch {
			case err != nil:
				report("storage", false, err.Error())
			case !exists:
				report("storage", false, "bucket "+cfg.Storage.Bucket+" not found")
			default:
				report("storage", true, "bucket "+cfg.Storage.Bucket)
			}
		}

		// Coach
		if cfg.Coach.IsConfigured() {
			report("coach", true, "model "+cfg.Coach.Model)
		} else {
			report("coach", true, "not configured, fallback replies")
		}

		logg.Debug("Doctor run finished", zap.String("driver", cfg.Database.Driver))
	},
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
