package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/observability"
	"github.com/dhruvkrishnavaid/oceaneye/internal/source"
	"github.com/dhruvkrishnavaid/oceaneye/internal/store"
)

const storeLabelNotifications = "notifications"

type NotificationService struct {
	store   *store.NotificationStore
	src     source.DataSource
	metrics *observability.Metrics
}

func NewNotificationService(st *store.NotificationStore, src source.DataSource, metrics *observability.Metrics) *NotificationService {
	return &NotificationService{
		store:   st,
		src:     src,
		metrics: metrics,
	}
}

func (s *NotificationService) Store() *store.NotificationStore {
	return s.store
}

func (s *NotificationService) Refresh(ctx context.Context) error {
	err := s.store.Refresh(ctx, s.src.FetchNotifications)
	switch {
	case errors.Is(err, store.ErrStaleResponse):
		s.metrics.StaleResponsesTotal.WithLabelValues(storeLabelNotifications).Inc()
		logrus.Warn("Discarded stale notification fetch response")
		return nil
	case err != nil:
		s.metrics.FetchesTotal.WithLabelValues(storeLabelNotifications, "error").Inc()
		logrus.Errorf("Notification fetch failed: %v", err)
		return err
	}
	s.metrics.FetchesTotal.WithLabelValues(storeLabelNotifications, "success").Inc()
	logrus.Infof("Notification store refreshed, %d notifications", s.store.Len())
	return nil
}

// List returns the full collection together with the stored unread count;
// the view filters statuses inline.
func (s *NotificationService) List() *model.NotificationListResponse {
	return &model.NotificationListResponse{
		Notifications: s.store.Items(),
		UnreadCount:   s.store.UnreadCount(),
	}
}

func (s *NotificationService) MarkAsRead(id int) bool {
	ok := s.store.MarkAsRead(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelNotifications, "read").Inc()
	}
	return ok
}

func (s *NotificationService) MarkAllAsRead() {
	s.store.MarkAllAsRead()
	s.metrics.ModerationTotal.WithLabelValues(storeLabelNotifications, "read_all").Inc()
}

func (s *NotificationService) MarkAsVerified(id int) bool {
	ok := s.store.MarkAsVerified(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelNotifications, "verify").Inc()
	}
	return ok
}

func (s *NotificationService) MarkAsFake(id int) bool {
	ok := s.store.MarkAsFake(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelNotifications, "fake").Inc()
	}
	return ok
}
