// internal/domain/models/need.go
package models

import "time"

// PostedDateLayout is the calendar format of Need.PostedDate.
const PostedDateLayout = "2006-01-02"

// Need is a business requirement posting (investment, marketing help, a
// co-founder, ...). Needs are not moderated; every posting is public as
// soon as it is added.
type Need struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	BusinessName string `json:"businessName"`
	Country      string `json:"country"`
	BusinessType string `json:"businessType,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	PostedDate   string `json:"postedDate"`
}

// NeedInput carries the fields of a "register a need" submission.
type NeedInput struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	BusinessName string `json:"businessName"`
	Country      string `json:"country"`
	BusinessType string `json:"businessType"`
	ContactEmail string `json:"contactEmail"`
	PostedDate   string `json:"postedDate"`
}

// NewNeed builds a Need from in. PostedDate defaults to now's calendar date.
func NewNeed(id int, in NeedInput, now time.Time) Need {
	return Need{
		ID:           id,
		Title:        in.Title,
		Type:         in.Type,
		Description:  in.Description,
		BusinessName: in.BusinessName,
		Country:      in.Country,
		BusinessType: in.BusinessType,
		ContactEmail: in.ContactEmail,
		PostedDate:   orDefault(in.PostedDate, now.Format(PostedDateLayout)),
	}
}
