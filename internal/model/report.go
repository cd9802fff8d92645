package model

import (
	"io"
	"time"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationFake     VerificationStatus = "fake"
)

// ValidVerificationStatus reports whether s is one of the three moderation states.
func ValidVerificationStatus(s VerificationStatus) bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationFake:
		return true
	}
	return false
}

// Severity display buckets derived from the canonical 0-100 numeric value.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// SeverityBucket maps a numeric severity to its display bucket:
// <25 low, 25-74 medium, >=75 high.
func SeverityBucket(severity int) string {
	switch {
	case severity < 25:
		return SeverityLow
	case severity < 75:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Report is a single crowdsourced coastal-hazard observation.
// Time is a human-readable relative label set when the report is created;
// it is static text and is not kept in sync with Timestamp.
type Report struct {
	ID          int                `json:"id"`
	Title       string             `json:"title"`
	Message     string             `json:"message"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	Coordinates Coordinates        `json:"coordinates"`
	Timestamp   time.Time          `json:"timestamp"`
	Time        string             `json:"time"`
	Severity    int                `json:"severity"` // 0-100, higher is more severe
	Type        string             `json:"type"`     // open hazard tag, e.g. high_waves, storm_surge
	Author      string             `json:"author"`
	Unread      bool               `json:"unread"`
	Verified    VerificationStatus `json:"verified"`
	Images      int                `json:"images"`
	Videos      int                `json:"videos"`
}

// SeverityLabel returns the display bucket for the report's numeric severity.
func (r *Report) SeverityLabel() string {
	return SeverityBucket(r.Severity)
}

func (r *Report) ItemID() int { return r.ID }

func (r *Report) IsUnread() bool { return r.Unread }

func (r *Report) SetUnread(unread bool) { r.Unread = unread }

func (r *Report) Status() VerificationStatus { return r.Verified }

func (r *Report) SetStatus(status VerificationStatus) { r.Verified = status }

// Request/Response DTOs
type ReportListResponse struct {
	Reports []Report `json:"reports"`
	Total   int      `json:"total"`
}

type ReportCountsResponse struct {
	UnreadCount   int `json:"unread_count"`
	VerifiedCount int `json:"verified_count"`
	Total         int `json:"total"`
}

// ReportSubmission carries the fields of the submission form plus any
// validated attachments, ready to be forwarded upstream.
type ReportSubmission struct {
	Title       string
	Description string
	Location    string
	Latitude    float64
	Longitude   float64
	Severity    int
	HazardType  string
	Author      string
	Attachments []Attachment
}

// Attachment is an already-validated media part of a submission. Open
// yields a fresh reader so the upstream client controls the upload.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// SubmitResult is the upstream acknowledgement of a report submission.
type SubmitResult struct {
	ReportID      string `json:"report_id"`
	FilesUploaded int    `json:"files_uploaded"`
	Images        int    `json:"images"`
	Videos        int    `json:"videos"`
	Message       string `json:"message"`
}
