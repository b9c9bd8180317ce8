// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	"github.com/dalemusser/startupbridge/internal/app/system/ratelimit"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

// Event categories.
const (
	CategoryAuth       = "auth"
	CategoryModeration = "moderation"
	CategorySubmission = "submission"
)

// Event types.
const (
	EventLoginSuccess     = "login_success"
	EventLoginFailed      = "login_failed"
	EventLoginRateLimited = "login_rate_limited"
	EventLogout           = "logout"
	EventListingApproved  = "listing_approved"
	EventListingRejected  = "listing_rejected"
	EventListingReopened  = "listing_reopened"
	EventListingDeleted   = "listing_deleted"
	EventListingSubmitted = "listing_submitted"
	EventNeedPosted       = "need_posted"
	EventMessageSent      = "message_sent"
)

// Destination settings.
const (
	ModeAll   = "all"   // activity store + zap
	ModeStore = "store" // activity store only
	ModeLog   = "log"   // zap only
	ModeOff   = "off"
)

// ValidMode reports whether s is a recognised destination setting.
func ValidMode(s string) bool {
	switch s {
	case ModeAll, ModeStore, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config chooses where each category goes. Only moderation events have a
// place in the activity store; for the other categories "store" behaves
// like "off" and "all" like "log".
type Config struct {
	Moderation string
	Auth       string
	Submission string
}

// Event is one audit record.
type Event struct {
	Category      string
	EventType     string
	Success       bool
	IP            string
	Admin         *models.Admin
	ListingID     int
	BusinessName  string
	FailureReason string
	Details       map[string]string
}

// Logger records audit events to the activity store and/or zap.
type Logger struct {
	store  *activity.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. store may be nil when no category is
// routed to it.
func New(store *activity.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.Admin != nil {
		fields = append(fields,
			zap.Int("admin_id", event.Admin.ID),
			zap.String("admin_email", event.Admin.Email))
	}
	if event.ListingID != 0 {
		fields = append(fields, zap.Int("listing_id", event.ListingID))
	}
	if event.BusinessName != "" {
		fields = append(fields, zap.String("business_name", event.BusinessName))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case CategoryModeration:
		setting = l.config.Moderation
	case CategoryAuth:
		setting = l.config.Auth
	case CategorySubmission:
		setting = l.config.Submission
	default:
		setting = ModeLog
	}
	if setting == "" {
		setting = ModeAll
	}
	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}

	if (setting == ModeAll || setting == ModeStore) && event.Category == CategoryModeration && l.store != nil {
		l.store.Record(toActivity(event))
	}
}

var moderationActions = map[string]string{
	EventListingApproved: models.ActionApproved,
	EventListingRejected: models.ActionRejected,
	EventListingReopened: models.ActionReopened,
	EventListingDeleted:  models.ActionDeleted,
}

func toActivity(event Event) models.Activity {
	a := models.Activity{
		Action:       moderationActions[event.EventType],
		ListingID:    event.ListingID,
		BusinessName: event.BusinessName,
	}
	if event.Admin != nil {
		a.AdminName = event.Admin.Name
	}
	return a
}

// --- Authentication Events ---

// LoginSuccess logs a successful admin sign-in.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, admin models.Admin) {
	l.Log(ctx, Event{
		Category:  CategoryAuth,
		EventType: EventLoginSuccess,
		Success:   true,
		IP:        ratelimit.ClientIP(r),
		Admin:     &admin,
	})
}

// LoginFailed logs a credential mismatch. The attempted email is kept
// for investigation; the response to the caller never says which part
// was wrong.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, attemptedEmail string) {
	l.Log(ctx, Event{
		Category:      CategoryAuth,
		EventType:     EventLoginFailed,
		IP:            ratelimit.ClientIP(r),
		FailureReason: "invalid credentials",
		Details:       map[string]string{"attempted_email": attemptedEmail},
	})
}

// LoginRateLimited logs a sign-in attempt refused by the limiter.
func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, attemptedEmail string) {
	l.Log(ctx, Event{
		Category:      CategoryAuth,
		EventType:     EventLoginRateLimited,
		IP:            ratelimit.ClientIP(r),
		FailureReason: "rate limit exceeded",
		Details:       map[string]string{"attempted_email": attemptedEmail},
	})
}

// Logout logs an admin sign-out. admin is nil when no session was active.
func (l *Logger) Logout(ctx context.Context, r *http.Request, admin *models.Admin) {
	l.Log(ctx, Event{
		Category:  CategoryAuth,
		EventType: EventLogout,
		Success:   true,
		IP:        ratelimit.ClientIP(r),
		Admin:     admin,
	})
}

// --- Moderation Events ---

// ListingModerated logs a moderation action on listing. eventType is one
// of the EventListing* moderation constants.
func (l *Logger) ListingModerated(ctx context.Context, admin models.Admin, eventType string, listing models.Listing) {
	l.Log(ctx, Event{
		Category:     CategoryModeration,
		EventType:    eventType,
		Success:      true,
		Admin:        &admin,
		ListingID:    listing.ID,
		BusinessName: listing.Name,
		Details:      map[string]string{"status": string(listing.Status)},
	})
}

// --- Submission Events ---

// ListingSubmitted logs a public listing submission.
func (l *Logger) ListingSubmitted(ctx context.Context, r *http.Request, listing models.Listing) {
	l.Log(ctx, Event{
		Category:     CategorySubmission,
		EventType:    EventListingSubmitted,
		Success:      true,
		IP:           ratelimit.ClientIP(r),
		ListingID:    listing.ID,
		BusinessName: listing.Name,
	})
}

// NeedPosted logs a public need posting.
func (l *Logger) NeedPosted(ctx context.Context, r *http.Request, need models.Need) {
	l.Log(ctx, Event{
		Category:     CategorySubmission,
		EventType:    EventNeedPosted,
		Success:      true,
		IP:           ratelimit.ClientIP(r),
		BusinessName: need.BusinessName,
		Details:      map[string]string{"need_id": strconv.Itoa(need.ID), "type": need.Type},
	})
}

// MessageSent logs a contact message. Subject and body stay out of the log.
func (l *Logger) MessageSent(ctx context.Context, r *http.Request, msg models.Message) {
	l.Log(ctx, Event{
		Category:     CategorySubmission,
		EventType:    EventMessageSent,
		Success:      true,
		IP:           ratelimit.ClientIP(r),
		BusinessName: msg.RecipientName,
		Details: map[string]string{
			"recipient_type": msg.RecipientType,
			"recipient_id":   strconv.Itoa(msg.RecipientID),
		},
	})
}
