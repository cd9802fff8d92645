package model

import "time"

type SocialPlatform string

const (
	PlatformTwitter   SocialPlatform = "Twitter"
	PlatformFacebook  SocialPlatform = "Facebook"
	PlatformYouTube   SocialPlatform = "YouTube"
	PlatformInstagram SocialPlatform = "Instagram"
	PlatformLinkedIn  SocialPlatform = "LinkedIn"
)

type Sentiment string

const (
	SentimentConcern  Sentiment = "concern"
	SentimentAdvisory Sentiment = "advisory"
	SentimentCaution  Sentiment = "caution"
	SentimentUrgent   Sentiment = "urgent"
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
)

// Engagement holds the per-platform interaction counters of a post.
type Engagement struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
	Views    int `json:"views"`
}

type SocialPost struct {
	ID         string         `json:"id"`
	Platform   SocialPlatform `json:"platform"`
	Content    string         `json:"content"`
	Author     string         `json:"author"`
	Engagement Engagement     `json:"engagement"`
	Hashtags   []string       `json:"hashtags"`
	Location   string         `json:"location"`
	Sentiment  Sentiment      `json:"sentiment"`
	Verified   bool           `json:"verified"` // verified author, not moderation state
	Timestamp  time.Time      `json:"timestamp"`
}

type TrendingHashtag struct {
	ID          string    `json:"id"`
	Tag         string    `json:"tag"`
	Count       int       `json:"count"`
	Trend       string    `json:"trend"` // up, down or stable
	LastUpdated time.Time `json:"last_updated"`
}

type SocialPostListResponse struct {
	Posts []SocialPost `json:"posts"`
	Total int          `json:"total"`
}

type TrendingListResponse struct {
	Hashtags []TrendingHashtag `json:"hashtags"`
}

// DashboardStats mirrors GET /api/dashboard/stats.
type DashboardStats struct {
	ActiveReports                int    `json:"active_reports"`
	SocialMentions               int    `json:"social_mentions"`
	ActiveUsers                  int    `json:"active_users"`
	VerifiedIncidents            int    `json:"verified_incidents"`
	ActiveReportsChange          string `json:"active_reports_change"`
	SocialMentionsChange         string `json:"social_mentions_change"`
	ActiveUsersDescription       string `json:"active_users_description"`
	VerifiedIncidentsDescription string `json:"verified_incidents_description"`
}
