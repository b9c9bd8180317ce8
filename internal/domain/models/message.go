package models

import "time"

// Recipient kinds a contact message can address.
const (
	RecipientBusiness = "business"
	RecipientNeed     = "need"
)

// Message is a contact message sent to the owner of a listing or need.
// The owner's contact details are never revealed to the sender.
type Message struct {
	ID            string    `json:"id"`
	RecipientType string    `json:"recipientType"`
	RecipientID   int       `json:"recipientId"`
	RecipientName string    `json:"recipientName"`
	Subject       string    `json:"subject"`
	Body          string    `json:"message"`
	SenderEmail   string    `json:"senderEmail,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}
