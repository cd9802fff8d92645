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

const storeLabelReports = "reports"

type ReportService struct {
	store   *store.ReportStore
	src     source.DataSource
	metrics *observability.Metrics
}

func NewReportService(st *store.ReportStore, src source.DataSource, metrics *observability.Metrics) *ReportService {
	return &ReportService{
		store:   st,
		src:     src,
		metrics: metrics,
	}
}

func (s *ReportService) Store() *store.ReportStore {
	return s.store
}

// Refresh repopulates the report collection from the data source. A stale
// response (one overtaken by a newer refresh) is discarded silently and
// does not surface as an error to the caller.
func (s *ReportService) Refresh(ctx context.Context) error {
	err := s.store.Refresh(ctx, s.src.FetchReports)
	switch {
	case errors.Is(err, store.ErrStaleResponse):
		s.metrics.StaleResponsesTotal.WithLabelValues(storeLabelReports).Inc()
		logrus.Warn("Discarded stale report fetch response")
		return nil
	case err != nil:
		s.metrics.FetchesTotal.WithLabelValues(storeLabelReports, "error").Inc()
		logrus.Errorf("Report fetch failed: %v", err)
		return err
	}
	s.metrics.FetchesTotal.WithLabelValues(storeLabelReports, "success").Inc()
	logrus.Infof("Report store refreshed, %d reports", s.store.Len())
	return nil
}

// List returns reports, optionally filtered to one verification status.
func (s *ReportService) List(status model.VerificationStatus) []model.Report {
	if status == "" {
		return s.store.Items()
	}
	return s.store.WithStatus(status)
}

func (s *ReportService) Counts() *model.ReportCountsResponse {
	return &model.ReportCountsResponse{
		UnreadCount:   s.store.UnreadCount(),
		VerifiedCount: s.store.VerifiedCount(),
		Total:         s.store.Len(),
	}
}

func (s *ReportService) MarkAsRead(id int) bool {
	ok := s.store.MarkAsRead(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelReports, "read").Inc()
	}
	return ok
}

func (s *ReportService) MarkAllAsRead() {
	s.store.MarkAllAsRead()
	s.metrics.ModerationTotal.WithLabelValues(storeLabelReports, "read_all").Inc()
}

func (s *ReportService) MarkAsVerified(id int) bool {
	ok := s.store.MarkAsVerified(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelReports, "verify").Inc()
	}
	return ok
}

func (s *ReportService) MarkAsFake(id int) bool {
	ok := s.store.MarkAsFake(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelReports, "fake").Inc()
	}
	return ok
}

func (s *ReportService) ResetVerification(id int) bool {
	ok := s.store.ResetVerification(id)
	if ok {
		s.metrics.ModerationTotal.WithLabelValues(storeLabelReports, "reset").Inc()
	}
	return ok
}

// Submit forwards an already-validated submission to the upstream source.
// Submissions are not reflected into the store; the collection is only
// replaced wholesale by Refresh.
func (s *ReportService) Submit(ctx context.Context, sub *model.ReportSubmission) (*model.SubmitResult, error) {
	result, err := s.src.SubmitReport(ctx, sub)
	if err != nil {
		s.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		logrus.Errorf("Report submission failed: %v", err)
		return nil, err
	}
	s.metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	logrus.Infof("Report submitted upstream, id=%s files=%d", result.ReportID, result.FilesUploaded)
	return result, nil
}

// RejectedSubmission records a submission refused by file validation.
func (s *ReportService) RejectedSubmission() {
	s.metrics.SubmissionsTotal.WithLabelValues("rejected").Inc()
}
