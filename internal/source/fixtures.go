package source

import (
	"time"

	"github.com/dhruvkrishnavaid/oceaneye/internal/model"
)

// seedReports returns the canned incident collection served by the mock
// source. Timestamps are anchored to now; the Time labels are the static
// relative strings assigned at creation.
func seedReports(now time.Time) []model.Report {
	return []model.Report{
		{
			ID:          1,
			Title:       "High Wave Alert",
			Message:     "Unusual wave patterns detected at Marina Beach",
			Description: "Unusual wave patterns observed, waves reaching 3-4 meters",
			Location:    "Marina Beach, Chennai",
			Coordinates: model.Coordinates{Latitude: 13.0478, Longitude: 80.2619},
			Timestamp:   now.Add(-2 * time.Minute),
			Time:        "2 minutes ago",
			Severity:    85,
			Type:        "high_waves",
			Author:      "Coastal Volunteer",
			Unread:      true,
			Verified:    model.VerificationPending,
			Images:      2,
			Videos:      1,
		},
		{
			ID:          2,
			Title:       "Storm Surge Warning",
			Message:     "Water levels rising rapidly in Visakhapatnam",
			Description: "Water levels rising rapidly, flooding in low-lying areas",
			Location:    "Visakhapatnam Port",
			Coordinates: model.Coordinates{Latitude: 17.6868, Longitude: 83.2185},
			Timestamp:   now.Add(-15 * time.Minute),
			Time:        "15 minutes ago",
			Severity:    90,
			Type:        "storm_surge",
			Author:      "Port Authority",
			Unread:      true,
			Verified:    model.VerificationPending,
			Images:      5,
			Videos:      2,
		},
		{
			ID:          3,
			Title:       "System Update",
			Message:     "Coastal monitoring sensors updated successfully",
			Description: "All coastal monitoring sensors have been updated with the latest firmware",
			Location:    "Multiple Locations",
			Coordinates: model.Coordinates{Latitude: 20.5937, Longitude: 78.9629},
			Timestamp:   now.Add(-1 * time.Hour),
			Time:        "1 hour ago",
			Severity:    15,
			Type:        "system_update",
			Author:      "System Administrator",
			Unread:      false,
			Verified:    model.VerificationVerified,
		},
		{
			ID:          4,
			Title:       "New User Report",
			Message:     "Volunteer reported debris at Kovalam Beach",
			Description: "Significant debris noticed after recent storms, cleanup required",
			Location:    "Kovalam Beach, Kerala",
			Coordinates: model.Coordinates{Latitude: 8.4004, Longitude: 76.9784},
			Timestamp:   now.Add(-2 * time.Hour),
			Time:        "2 hours ago",
			Severity:    55,
			Type:        "coastal_damage",
			Author:      "Environmental Group",
			Unread:      false,
			Verified:    model.VerificationVerified,
			Images:      8,
			Videos:      1,
		},
		{
			ID:          5,
			Title:       "Weather Advisory",
			Message:     "Moderate to rough seas expected for next 24 hours",
			Description: "False weather advisory - conditions are actually calm",
			Location:    "Bay of Bengal",
			Coordinates: model.Coordinates{Latitude: 15.0000, Longitude: 85.0000},
			Timestamp:   now.Add(-4 * time.Hour),
			Time:        "4 hours ago",
			Severity:    45,
			Type:        "weather_advisory",
			Author:      "Fake Weather Service",
			Unread:      false,
			Verified:    model.VerificationFake,
		},
		{
			ID:          6,
			Title:       "Equipment Maintenance",
			Message:     "Scheduled maintenance of monitoring buoy #7",
			Description: "Routine maintenance completed successfully on monitoring equipment",
			Location:    "Offshore Chennai",
			Coordinates: model.Coordinates{Latitude: 13.0827, Longitude: 80.2707},
			Timestamp:   now.Add(-6 * time.Hour),
			Time:        "6 hours ago",
			Severity:    20,
			Type:        "maintenance",
			Author:      "Maintenance Team",
			Unread:      false,
			Verified:    model.VerificationVerified,
			Images:      3,
		},
		{
			ID:          7,
			Title:       "Tidal Alert",
			Message:     "Exceptionally high tide expected at 3:00 PM",
			Description: "Tide receding much faster than predicted, unusual patterns observed",
			Location:    "Puri Beach, Odisha",
			Coordinates: model.Coordinates{Latitude: 19.8135, Longitude: 85.8312},
			Timestamp:   now.Add(-8 * time.Hour),
			Time:        "8 hours ago",
			Severity:    60,
			Type:        "unusual_tide",
			Author:      "Local Fisherman",
			Unread:      true,
			Verified:    model.VerificationPending,
			Images:      1,
		},
		{
			ID:          8,
			Title:       "Tsunami Drill Success",
			Message:     "Annual tsunami evacuation drill completed successfully",
			Description: "All evacuation procedures tested and working properly",
			Location:    "Kanyakumari District",
			Coordinates: model.Coordinates{Latitude: 8.4875, Longitude: 77.6784},
			Timestamp:   now.Add(-24 * time.Hour),
			Time:        "1 day ago",
			Severity:    10,
			Type:        "drill",
			Author:      "Emergency Management",
			Unread:      false,
			Verified:    model.VerificationVerified,
			Images:      12,
			Videos:      3,
		},
	}
}

func seedNotifications(now time.Time) []model.Notification {
	reports := seedReports(now)
	out := make([]model.Notification, 0, len(reports))
	for _, r := range reports {
		out = append(out, model.NotificationFromReport(r))
	}
	return out
}

func seedStats() *model.DashboardStats {
	return &model.DashboardStats{
		ActiveReports:                47,
		SocialMentions:               1247,
		ActiveUsers:                  328,
		VerifiedIncidents:            23,
		ActiveReportsChange:          "+12 from last hour",
		SocialMentionsChange:         "+89 from last hour",
		ActiveUsersDescription:       "Online now",
		VerifiedIncidentsDescription: "Requires attention",
	}
}

func seedSocialPosts(now time.Time) []model.SocialPost {
	return []model.SocialPost{
		{
			ID:         "1",
			Platform:   model.PlatformTwitter,
			Content:    "Massive waves hitting the shore at #MarinaBeach! Stay safe everyone #ChennaiWeather #OceanAlert",
			Author:     "@Chennai_Updates",
			Engagement: model.Engagement{Likes: 245, Retweets: 89, Replies: 34},
			Hashtags:   []string{"#MarinaBeach", "#ChennaiWeather", "#OceanAlert"},
			Location:   "Chennai, Tamil Nadu",
			Sentiment:  model.SentimentConcern,
			Verified:   true,
			Timestamp:  now.Add(-1 * time.Hour),
		},
		{
			ID:         "2",
			Platform:   model.PlatformFacebook,
			Content:    "Fishermen advised not to venture into sea today due to rough weather conditions. Waves up to 4m expected.",
			Author:     "Kerala Fisheries Department",
			Engagement: model.Engagement{Likes: 156, Shares: 78, Comments: 23},
			Hashtags:   []string{"#FishermenSafety", "#KeralaWeather"},
			Location:   "Kerala",
			Sentiment:  model.SentimentAdvisory,
			Verified:   true,
			Timestamp:  now.Add(-2 * time.Hour),
		},
		{
			ID:         "3",
			Platform:   model.PlatformTwitter,
			Content:    "Beautiful but dangerous waves at #PuriBeach today. Tourists please maintain safe distance! #OdishaCoast",
			Author:     "@OdishaTourism",
			Engagement: model.Engagement{Likes: 89, Retweets: 23, Replies: 12},
			Hashtags:   []string{"#PuriBeach", "#OdishaCoast", "#SafetyFirst"},
			Location:   "Puri, Odisha",
			Sentiment:  model.SentimentCaution,
			Verified:   true,
			Timestamp:  now.Add(-3 * time.Hour),
		},
		{
			ID:         "4",
			Platform:   model.PlatformYouTube,
			Content:    "Live: Storm surge footage from Visakhapatnam port - Emergency response in action",
			Author:     "News24x7",
			Engagement: model.Engagement{Views: 12500, Likes: 234, Comments: 67},
			Hashtags:   []string{"#StormSurge", "#Visakhapatnam", "#EmergencyResponse"},
			Location:   "Visakhapatnam, Andhra Pradesh",
			Sentiment:  model.SentimentUrgent,
			Verified:   true,
			Timestamp:  now.Add(-4 * time.Hour),
		},
	}
}

func seedTrending(now time.Time) []model.TrendingHashtag {
	return []model.TrendingHashtag{
		{ID: "1", Tag: "#OceanAlert", Count: 1245, Trend: "up", LastUpdated: now},
		{ID: "2", Tag: "#CoastalSafety", Count: 892, Trend: "up", LastUpdated: now},
		{ID: "3", Tag: "#MarinaBeach", Count: 567, Trend: "up", LastUpdated: now},
		{ID: "4", Tag: "#StormSurge", Count: 445, Trend: "stable", LastUpdated: now},
		{ID: "5", Tag: "#TsunamiWatch", Count: 234, Trend: "down", LastUpdated: now},
	}
}
