package cmd

import (
	"context"

	"github.com/sanchara/sanchara/internal/auth"
	"github.com/sanchara/sanchara/internal/config"
	"github.com/sanchara/sanchara/internal/database"
	"github.com/sanchara/sanchara/internal/logging"
	"github.com/sanchara/sanchara/pkg/models"
	"github.com/sanchara/sanchara/pkg/repository"
	"github.com/sanchara/sanchara/pkg/schemas"
	"github.com/sanchara/sanchara/pkg/services"
	"github.com/spf13/cobra"
)

func fl(v float64) *float64 {
	return &v
}

func str(v string) *string {
	return &v
}

func demoEvents() []schemas.EventIn {
	return []schemas.EventIn{
		{
			Title:         "Marriage",
			Category:      "personal",
			StartDate:     models.NewDate(2027, 2, 10),
			Status:        models.StatusPlanned,
			Priority:      models.PriorityHigh,
			TimelinePhase: str("marriage-phase"),
			IsFinancial:   true,
			SavingsTarget: fl(1500000),
			AmountSaved:   fl(450000),
		},
		{
			Title:         "Buy Land",
			Category:      "finance",
			StartDate:     models.NewDate(2028, 11, 1),
			Status:        models.StatusPlanned,
			Priority:      models.PriorityCritical,
			TimelinePhase: str("farm-phase"),
			IsFinancial:   true,
			SavingsTarget: fl(3500000),
			AmountSaved:   fl(700000),
		},
		{
			Title:         "Start PhD",
			Category:      "education",
			StartDate:     models.NewDate(2030, 9, 1),
			Status:        models.StatusPlanned,
			Priority:      models.PriorityHigh,
			TimelinePhase: str("advanced-study"),
			IsFinancial:   false,
		},
	}
}

// NewSeed inserts demo events for local development.
func NewSeed() *cobra.Command {
	var cfg config.ServerCmdConfig
	loader := config.NewConfigLoader()
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed demo events for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loader.InitializeConfig(cmd); err != nil {
				return err
			}
			if err := loader.Load(&cfg); err != nil {
				return err
			}

			lg := logging.DefaultLogger().Sugar()

			db, err := database.NewDatabase(&cfg.DB, lg)
			if err != nil {
				return err
			}
			if err := database.MigrateDB(db); err != nil {
				return err
			}

			svc := services.NewEventService(repository.NewPostgresEventRepository(db), lg)

			events := demoEvents()
			for i := range events {
				if _, apperr := svc.CreateEvent(context.Background(), auth.DefaultUser, &events[i]); apperr != nil {
					return apperr.Error
				}
			}
			lg.Infof("Seeded %d demo events", len(events))
			return nil
		},
	}
	config.AddCommonFlags(cmd.Flags(), &cfg)
	return cmd
}
