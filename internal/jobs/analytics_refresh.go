package jobs

import (
	"context"
	"time"

	"splybob/internal/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// StartAnalyticsRefresh runs the analytics summary recomputation on an
// interval so the cached dashboard stays warm. The returned scheduler should
// be shut down when the server stops.
func StartAnalyticsRefresh(analyticsSvc services.AnalyticsService, interval time.Duration) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := analyticsSvc.Refresh(ctx); err != nil {
				log.Error().Err(err).Msg("analytics refresh failed")
				return
			}
			log.Debug().Msg("analytics summary refreshed")
		}),
		gocron.WithName("analytics-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}
