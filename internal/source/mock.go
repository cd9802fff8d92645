package source

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/upload"
)

// MockSource serves seeded coastal-incident fixtures after a simulated
// network delay, with a configurable random failure rate used to exercise
// the error/retry path of the dashboard. The clock is injected so tests
// can advance time instead of sleeping.
type MockSource struct {
	clock       clockwork.Clock
	delay       time.Duration
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockSource(clock clockwork.Clock, delay time.Duration, failureRate float64) *MockSource {
	return &MockSource{
		clock:       clock,
		delay:       delay,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(clock.Now().UnixNano())),
	}
}

func (m *MockSource) FetchReports(ctx context.Context) ([]model.Report, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to fetch reports")
	}
	return seedReports(m.clock.Now()), nil
}

func (m *MockSource) FetchNotifications(ctx context.Context) ([]model.Notification, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to fetch notifications")
	}
	return seedNotifications(m.clock.Now()), nil
}

func (m *MockSource) FetchStats(ctx context.Context) (*model.DashboardStats, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to fetch dashboard stats")
	}
	return seedStats(), nil
}

func (m *MockSource) FetchSocialPosts(ctx context.Context) ([]model.SocialPost, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to fetch social posts")
	}
	return seedSocialPosts(m.clock.Now()), nil
}

func (m *MockSource) FetchTrending(ctx context.Context) ([]model.TrendingHashtag, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to fetch trending hashtags")
	}
	return seedTrending(m.clock.Now()), nil
}

func (m *MockSource) SubmitReport(ctx context.Context, sub *model.ReportSubmission) (*model.SubmitResult, error) {
	if err := m.simulate(ctx); err != nil {
		return nil, err
	}
	if m.shouldFail() {
		return nil, errors.New("failed to submit report")
	}
	images, videos := 0, 0
	for _, att := range sub.Attachments {
		if upload.IsVideo(att.ContentType) {
			videos++
		} else {
			images++
		}
	}
	return &model.SubmitResult{
		ReportID:      fmt.Sprintf("report_%s", uuid.New()),
		FilesUploaded: len(sub.Attachments),
		Images:        images,
		Videos:        videos,
		Message:       fmt.Sprintf("Report created successfully with %d files uploaded", len(sub.Attachments)),
	}, nil
}

// simulate blocks for the configured delay or until the context is done.
func (m *MockSource) simulate(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-m.clock.After(m.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockSource) shouldFail() bool {
	if m.failureRate <= 0 {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rng.Float64() < m.failureRate
}
