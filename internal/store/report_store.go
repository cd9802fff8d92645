package store

import (
	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// ReportStore holds the canonical report collection. Selectors are
// recomputed from current state on each call.
type ReportStore struct {
	*Store[model.Report, *model.Report]
}

func NewReportStore() *ReportStore {
	return &ReportStore{Store: New[model.Report, *model.Report]()}
}

// Pending returns the reports awaiting moderation.
func (s *ReportStore) Pending() []model.Report {
	return s.WithStatus(model.VerificationPending)
}

// Verified returns the reports confirmed by a moderator.
func (s *ReportStore) Verified() []model.Report {
	return s.WithStatus(model.VerificationVerified)
}

// Fake returns the reports dismissed as fake.
func (s *ReportStore) Fake() []model.Report {
	return s.WithStatus(model.VerificationFake)
}

// UnreadCount counts reports that are unread or still pending. Pending
// items are folded in regardless of the unread flag so that anything
// awaiting triage surfaces in the badge.
func (s *ReportStore) UnreadCount() int {
	return s.Count(func(r *model.Report) bool {
		return r.Unread || r.Verified == model.VerificationPending
	})
}

// VerifiedCount counts reports in the verified status.
func (s *ReportStore) VerifiedCount() int {
	return s.Count(func(r *model.Report) bool {
		return r.Verified == model.VerificationVerified
	})
}
