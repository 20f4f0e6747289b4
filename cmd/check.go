package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"bloom/core/config"
	"bloom/core/database"
	"bloom/core/logger"
	"bloom/core/storage"
	"bloom/feature/library"

	"github.com/spf13/cobra"
)

var checkVerbose bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check library integrity",
	Long: `Reconciles catalog documents, media objects and favorites and prints
the report. With --verbose every key is listed, otherwise only the summary
and the problem rows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		svc, err := library.NewService(db, client, cfg.Storage.Bucket, logg)
		if err != nil {
			return err
		}

		report, err := svc.Check(cmd.Context())
		if err != nil {
			return err
		}

		if !checkVerbose {
			// Keep only rows that need attention.
			problems := report.Results[:0]
			for _, result := range report.Results {
				if result.CatalogPresent && result.MediaPresent {
					continue
				}
				problems = append(problems, result)
			}
			report.Results = problems
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "list every key, not just problems")
	RootCmd.AddCommand(checkCmd)
}
