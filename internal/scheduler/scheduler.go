package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/dhruvkrishnavaid/oceaneye/internal/service"
)

// Service periodically refreshes the report and notification stores so the
// dashboard stays current between user-triggered fetches. Overlap with a
// manual refresh is harmless: the stores discard stale responses.
type Service struct {
	reportService       *service.ReportService
	notificationService *service.NotificationService
	schedule            string
	cron                *cron.Cron
}

func NewService(reportService *service.ReportService, notificationService *service.NotificationService, schedule string) *Service {
	return &Service{
		reportService:       reportService,
		notificationService: notificationService,
		schedule:            schedule,
		cron:                cron.New(),
	}
}

// Start registers the refresh job and begins the schedule.
func (s *Service) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.reportService.Refresh(ctx); err != nil {
			logrus.Errorf("Scheduled report refresh failed: %v", err)
		}
		if err := s.notificationService.Refresh(ctx); err != nil {
			logrus.Errorf("Scheduled notification refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s refresh schedule", s.schedule)
	return nil
}

// Stop stops the scheduler.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
