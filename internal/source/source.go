// Package source defines the upstream data boundary of the dashboard.
// Core logic depends only on the DataSource interface, never on a
// particular transport.
package source

import (
	"context"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

type DataSource interface {
	FetchReports(ctx context.Context) ([]model.Report, error)
	FetchNotifications(ctx context.Context) ([]model.Notification, error)
	FetchStats(ctx context.Context) (*model.DashboardStats, error)
	FetchSocialPosts(ctx context.Context) ([]model.SocialPost, error)
	FetchTrending(ctx context.Context) ([]model.TrendingHashtag, error)
	SubmitReport(ctx context.Context, sub *model.ReportSubmission) (*model.SubmitResult, error)
}
