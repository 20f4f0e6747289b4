package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bloom/core/config"
	"bloom/core/cycle"
	"bloom/core/database"
	"bloom/core/kv"
	"bloom/core/logger"
	"bloom/feature/journal"

	"github.com/spf13/cobra"
)

// phaseCmd represents the phase command
var phaseCmd = &cobra.Command{
	Use:   "phase [date]",
	Short: "Show the derived cycle phase for a date",
	Long: `Derives the cycle phase for a date (YYYY-MM-DD) from the stored
journal history and configuration. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
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
		settings, err := kv.NewStore(db)
		if err != nil {
			return err
		}
		svc, err := journal.NewService(db, settings, logg)
		if err != nil {
			return err
		}

		date := time.Now().Format(cycle.DateLayout)
		if len(args) == 1 {
			date = args[0]
		}

		info, err := svc.PhaseFor(cmd.Context(), date)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(struct {
			Date string `json:"date"`
			cycle.PhaseInfo
		}{Date: date, PhaseInfo: info}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(phaseCmd)
}
