package model

// Notification is the reduced-fidelity sibling of Report used by the
// alternate dashboard variant: no coordinates, no media counts, and
// severity as a display bucket instead of the numeric value.
type Notification struct {
	ID       int                `json:"id"`
	Title    string             `json:"title"`
	Message  string             `json:"message"`
	Time     string             `json:"time"`
	Severity string             `json:"severity"` // low, medium or high
	Unread   bool               `json:"unread"`
	Verified VerificationStatus `json:"verified"`
}

// NotificationFromReport projects a report into the notification shape,
// deriving the bucketed severity from the numeric value.
func NotificationFromReport(r Report) Notification {
	return Notification{
		ID:       r.ID,
		Title:    r.Title,
		Message:  r.Message,
		Time:     r.Time,
		Severity: SeverityBucket(r.Severity),
		Unread:   r.Unread,
		Verified: r.Verified,
	}
}

func (n *Notification) ItemID() int { return n.ID }

func (n *Notification) IsUnread() bool { return n.Unread }

func (n *Notification) SetUnread(unread bool) { n.Unread = unread }

func (n *Notification) Status() VerificationStatus { return n.Verified }

func (n *Notification) SetStatus(status VerificationStatus) { n.Verified = status }

type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}
