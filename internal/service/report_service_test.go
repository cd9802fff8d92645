package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/observability"
	"github.com/dhruvkrishnavaid/oceaneye/internal/store"
)

// stubSource is a programmable DataSource for service tests.
type stubSource struct {
	mu            sync.Mutex
	reports       []model.Report
	notifications []model.Notification
	stats         *model.DashboardStats
	posts         []model.SocialPost
	trending      []model.TrendingHashtag
	submitResult  *model.SubmitResult
	err           error

	// When set, FetchReports signals started and parks on gate until it
	// is closed.
	gate    chan struct{}
	started chan struct{}
}

func (s *stubSource) FetchReports(ctx context.Context) ([]model.Report, error) {
	if s.gate != nil {
		if s.started != nil {
			close(s.started)
		}
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reports, s.err
}

func (s *stubSource) FetchNotifications(ctx context.Context) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications, s.err
}

func (s *stubSource) FetchStats(ctx context.Context) (*model.DashboardStats, error) {
	return s.stats, s.err
}

func (s *stubSource) FetchSocialPosts(ctx context.Context) ([]model.SocialPost, error) {
	return s.posts, s.err
}

func (s *stubSource) FetchTrending(ctx context.Context) ([]model.TrendingHashtag, error) {
	return s.trending, s.err
}

func (s *stubSource) SubmitReport(ctx context.Context, sub *model.ReportSubmission) (*model.SubmitResult, error) {
	return s.submitResult, s.err
}

func sampleReports() []model.Report {
	return []model.Report{
		{ID: 1, Title: "High Wave Alert", Severity: 85, Verified: model.VerificationPending, Unread: true},
		{ID: 2, Title: "Storm Surge Warning", Severity: 90, Verified: model.VerificationVerified},
		{ID: 3, Title: "Jellyfish Swarm", Severity: 30, Verified: model.VerificationFake},
	}
}

func TestReportService_RefreshPopulatesStore(t *testing.T) {
	src := &stubSource{reports: sampleReports()}
	svc := NewReportService(store.NewReportStore(), src, observability.NewMetricsForTesting())

	require.NoError(t, svc.Refresh(context.Background()))
	assert.Len(t, svc.List(""), 3)
	assert.Len(t, svc.List(model.VerificationPending), 1)
	assert.Len(t, svc.List(model.VerificationVerified), 1)
}

func TestReportService_RefreshError(t *testing.T) {
	src := &stubSource{err: errors.New("failed to fetch reports")}
	st := store.NewReportStore()
	svc := NewReportService(st, src, observability.NewMetricsForTesting())

	err := svc.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to fetch reports", st.Err())
	assert.Empty(t, svc.List(""))
}

func TestReportService_StaleRefreshIsNotAnError(t *testing.T) {
	src := &stubSource{reports: sampleReports(), gate: make(chan struct{}), started: make(chan struct{})}
	st := store.NewReportStore()
	svc := NewReportService(st, src, observability.NewMetricsForTesting())

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- svc.Refresh(context.Background())
	}()
	<-src.started

	// A second refresh supersedes the first while it is still in flight.
	fresh := []model.Report{{ID: 9, Title: "Rip Current", Verified: model.VerificationPending}}
	second := &stubSource{reports: fresh}
	require.NoError(t, st.Refresh(context.Background(), second.FetchReports))

	close(src.gate)
	require.NoError(t, <-firstDone, "a superseded refresh reports success to the caller")

	items := st.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].ID)
}

func TestReportService_Counts(t *testing.T) {
	src := &stubSource{reports: sampleReports()}
	svc := NewReportService(store.NewReportStore(), src, observability.NewMetricsForTesting())
	require.NoError(t, svc.Refresh(context.Background()))

	counts := svc.Counts()
	assert.Equal(t, 1, counts.UnreadCount)
	assert.Equal(t, 1, counts.VerifiedCount)
	assert.Equal(t, 3, counts.Total)
}

func TestReportService_Moderation(t *testing.T) {
	src := &stubSource{reports: sampleReports()}
	svc := NewReportService(store.NewReportStore(), src, observability.NewMetricsForTesting())
	require.NoError(t, svc.Refresh(context.Background()))

	assert.True(t, svc.MarkAsVerified(1))
	assert.False(t, svc.MarkAsVerified(99), "unknown id is a no-op")
	assert.Len(t, svc.List(model.VerificationVerified), 2)

	assert.True(t, svc.ResetVerification(1))
	assert.Len(t, svc.List(model.VerificationPending), 1)

	assert.True(t, svc.MarkAsFake(1))
	assert.Len(t, svc.List(model.VerificationFake), 2)

	svc.MarkAllAsRead()
	assert.Equal(t, 0, svc.Store().Count(func(r *model.Report) bool { return r.Unread }))
}

func TestReportService_Submit(t *testing.T) {
	src := &stubSource{submitResult: &model.SubmitResult{ReportID: "report_abc", FilesUploaded: 2, Message: "Report created successfully"}}
	svc := NewReportService(store.NewReportStore(), src, observability.NewMetricsForTesting())

	result, err := svc.Submit(context.Background(), &model.ReportSubmission{Title: "Oil sheen"})
	require.NoError(t, err)
	assert.Equal(t, "report_abc", result.ReportID)

	src.err = errors.New("upstream down")
	src.submitResult = nil
	_, err = svc.Submit(context.Background(), &model.ReportSubmission{Title: "Oil sheen"})
	assert.Error(t, err)
}

func TestNotificationService_ListCarriesStoredUnreadCount(t *testing.T) {
	src := &stubSource{notifications: []model.Notification{
		{ID: 1, Title: "High Wave Alert", Unread: true, Verified: model.VerificationPending},
		{ID: 2, Title: "Storm Surge Warning", Unread: true, Verified: model.VerificationPending},
		{ID: 3, Title: "Water Quality Notice", Verified: model.VerificationVerified},
	}}
	svc := NewNotificationService(store.NewNotificationStore(), src, observability.NewMetricsForTesting())
	require.NoError(t, svc.Refresh(context.Background()))

	resp := svc.List()
	assert.Len(t, resp.Notifications, 3)
	assert.Equal(t, 2, resp.UnreadCount)

	require.True(t, svc.MarkAsRead(1))
	assert.Equal(t, 1, svc.List().UnreadCount)

	svc.MarkAllAsRead()
	assert.Equal(t, 0, svc.List().UnreadCount)
}

func TestNotificationService_ModerationClearsUnread(t *testing.T) {
	src := &stubSource{notifications: []model.Notification{
		{ID: 1, Title: "High Wave Alert", Unread: true, Verified: model.VerificationPending},
	}}
	svc := NewNotificationService(store.NewNotificationStore(), src, observability.NewMetricsForTesting())
	require.NoError(t, svc.Refresh(context.Background()))

	require.True(t, svc.MarkAsVerified(1))
	assert.Equal(t, 0, svc.List().UnreadCount)
}

func TestDashboardService_SocialPostFilters(t *testing.T) {
	src := &stubSource{posts: []model.SocialPost{
		{ID: "1", Platform: model.PlatformTwitter, Sentiment: model.SentimentConcern, Location: "Marina Beach, Chennai"},
		{ID: "2", Platform: model.PlatformFacebook, Sentiment: model.SentimentPositive, Location: "Kovalam Beach"},
		{ID: "3", Platform: model.PlatformTwitter, Sentiment: model.SentimentPositive, Location: "Marina Beach, Chennai"},
	}}
	svc := NewDashboardService(src)

	posts, err := svc.SocialPosts(context.Background(), "twitter", "", "")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.SocialPosts(context.Background(), "twitter", "positive", "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "3", posts[0].ID)

	posts, err = svc.SocialPosts(context.Background(), "", "", "marina")
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.SocialPosts(context.Background(), "", "", "nowhere")
	require.NoError(t, err)
	assert.Empty(t, posts)
}
