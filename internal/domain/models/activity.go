// internal/domain/models/activity.go
package models

import "time"

// Moderation actions recorded in the admin activity list.
const (
	ActionApproved = "Approved"
	ActionRejected = "Rejected"
	ActionReopened = "Reopened"
	ActionDeleted  = "Deleted"
)

// Activity is one entry of the admin console's activity list. It is
// display-only and never affects listing state.
type Activity struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	ListingID    int       `json:"listingId"`
	BusinessName string    `json:"businessName"`
	AdminName    string    `json:"adminName"`
	Timestamp    time.Time `json:"timestamp"`
}
