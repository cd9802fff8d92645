package service

import (
	"context"
	"strings"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
	"github.com/dhruvkrishnavaid/oceaneye/internal/source"
)

// DashboardService serves the widgets that sit next to the report cards:
// headline statistics, the social-media monitoring feed and trending
// hashtags. All of it is fetched on demand from the data source.
type DashboardService struct {
	src source.DataSource
}

func NewDashboardService(src source.DataSource) *DashboardService {
	return &DashboardService{src: src}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.src.FetchStats(ctx)
}

// SocialPosts fetches the feed and applies the optional platform,
// sentiment and location filters. Location matches on substring,
// case-insensitive, the way the upstream API filters.
func (s *DashboardService) SocialPosts(ctx context.Context, platform, sentiment, location string) ([]model.SocialPost, error) {
	posts, err := s.src.FetchSocialPosts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []model.SocialPost{}
	for _, p := range posts {
		if platform != "" && !strings.EqualFold(string(p.Platform), platform) {
			continue
		}
		if sentiment != "" && !strings.EqualFold(string(p.Sentiment), sentiment) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(location)) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

func (s *DashboardService) Trending(ctx context.Context) ([]model.TrendingHashtag, error) {
	return s.src.FetchTrending(ctx)
}
