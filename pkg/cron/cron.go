package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sanchara/sanchara/internal/config"
	"github.com/sanchara/sanchara/internal/logging"
	"github.com/sanchara/sanchara/pkg/repository"
	"go.uber.org/zap"
)

type CronService struct {
	repo   repository.EventRepository
	cnf    *config.CronJobConfig
	logger *zap.SugaredLogger
}

// StartCronJobs schedules background maintenance. Soft-deleted events
// stay invisible but on disk until the retention window passes, then
// the purge job drops them for good.
func StartCronJobs(repo repository.EventRepository, cnf *config.CronJobConfig) (*cron.Cron, error) {
	scheduler := cron.New()

	service := &CronService{repo: repo, cnf: cnf, logger: logging.DefaultLogger().Sugar()}

	_, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cnf.PurgeInterval), func() {
		service.PurgeDeletedEvents(context.Background())
	})
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}

func (c *CronService) PurgeDeletedEvents(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-c.cnf.DeletedRetention)
	purged, err := c.repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		c.logger.Errorw("failed to purge deleted events", "err", err)
		return
	}
	if purged > 0 {
		c.logger.Infow("purged deleted events", "count", purged)
	}
}
