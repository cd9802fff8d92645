package source

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// HTTPSource talks to the upstream OceanEye API. It is a drop-in
// replacement for MockSource once a real backend is available.
type HTTPSource struct {
	client *resty.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &HTTPSource{client: client}
}

func (s *HTTPSource) FetchReports(ctx context.Context) ([]model.Report, error) {
	var out model.ReportListResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/reports")
	if err != nil {
		return nil, fmt.Errorf("fetch reports: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch reports: upstream returned %s", resp.Status())
	}
	return out.Reports, nil
}

// FetchNotifications derives the lighter notification shape from the
// upstream report collection; there is no separate notifications endpoint.
func (s *HTTPSource) FetchNotifications(ctx context.Context) ([]model.Notification, error) {
	reports, err := s.FetchReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Notification, 0, len(reports))
	for _, r := range reports {
		out = append(out, model.NotificationFromReport(r))
	}
	return out, nil
}

func (s *HTTPSource) FetchStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.DashboardStats
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/dashboard/stats")
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch stats: upstream returned %s", resp.Status())
	}
	return &out, nil
}

func (s *HTTPSource) FetchSocialPosts(ctx context.Context) ([]model.SocialPost, error) {
	var out model.SocialPostListResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/social")
	if err != nil {
		return nil, fmt.Errorf("fetch social posts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch social posts: upstream returned %s", resp.Status())
	}
	return out.Posts, nil
}

func (s *HTTPSource) FetchTrending(ctx context.Context) ([]model.TrendingHashtag, error) {
	var out model.TrendingListResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/trending")
	if err != nil {
		return nil, fmt.Errorf("fetch trending: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch trending: upstream returned %s", resp.Status())
	}
	return out.Hashtags, nil
}

func (s *HTTPSource) SubmitReport(ctx context.Context, sub *model.ReportSubmission) (*model.SubmitResult, error) {
	req := s.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"title":       sub.Title,
			"description": sub.Description,
			"location":    sub.Location,
			"latitude":    strconv.FormatFloat(sub.Latitude, 'f', -1, 64),
			"longitude":   strconv.FormatFloat(sub.Longitude, 'f', -1, 64),
			"severity":    strconv.Itoa(sub.Severity),
			"hazard_type": sub.HazardType,
			"author":      sub.Author,
		})

	for _, att := range sub.Attachments {
		reader, err := att.Open()
		if err != nil {
			return nil, fmt.Errorf("open attachment %s: %w", att.Filename, err)
		}
		defer reader.Close()
		req.SetMultipartField("files", att.Filename, att.ContentType, reader)
	}

	var out model.SubmitResult
	resp, err := req.SetResult(&out).Post("/api/reports")
	if err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("submit report: upstream returned %s", resp.Status())
	}
	return &out, nil
}
