package store

import (
	"sync/atomic"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// NotificationStore holds the notification collection for the alternate
// dashboard variant. Unlike ReportStore it keeps the unread count as a
// stored field, maintained on every mutation rather than recomputed by
// callers; the view filters statuses inline.
type NotificationStore struct {
	*Store[model.Notification, *model.Notification]
	unread atomic.Int64
}

func NewNotificationStore() *NotificationStore {
	s := &NotificationStore{Store: New[model.Notification, *model.Notification]()}
	s.SetOnChange(func(items []model.Notification) {
		n := int64(0)
		for i := range items {
			if items[i].Unread {
				n++
			}
		}
		s.unread.Store(n)
	})
	return s
}

// UnreadCount returns the stored unread counter.
func (s *NotificationStore) UnreadCount() int {
	return int(s.unread.Load())
}
