// Package moderation drives listings through pending, approved and
// rejected. The listing store trusts its caller, so every method here
// assumes the route guard has already admitted an admin.
package moderation

import (
	"context"

	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

// Service applies moderation decisions and records them in the activity log.
type Service struct {
	listings *listingstore.Store
	audit    *auditlog.Logger
	log      *zap.Logger
}

// New constructs a Service.
func New(listings *listingstore.Store, audit *auditlog.Logger, logger *zap.Logger) *Service {
	return &Service{listings: listings, audit: audit, log: logger}
}

var statusEvents = map[models.ListingStatus]string{
	models.StatusApproved: auditlog.EventListingApproved,
	models.StatusRejected: auditlog.EventListingRejected,
	models.StatusPending:  auditlog.EventListingReopened,
}

// Approve makes the listing publicly visible.
func (s *Service) Approve(ctx context.Context, admin models.Admin, id int) (models.Listing, bool) {
	return s.SetStatus(ctx, admin, id, models.StatusApproved)
}

// Reject hides the listing from public pages.
func (s *Service) Reject(ctx context.Context, admin models.Admin, id int) (models.Listing, bool) {
	return s.SetStatus(ctx, admin, id, models.StatusRejected)
}

// Reopen returns the listing to pending review.
func (s *Service) Reopen(ctx context.Context, admin models.Admin, id int) (models.Listing, bool) {
	return s.SetStatus(ctx, admin, id, models.StatusPending)
}

// SetStatus moves the listing to status. Any transition between known
// statuses is allowed, including back to pending. An unknown id or status
// changes nothing, records nothing, and reports false.
func (s *Service) SetStatus(ctx context.Context, admin models.Admin, id int, status models.ListingStatus) (models.Listing, bool) {
	event, ok := statusEvents[status]
	if !ok {
		return models.Listing{}, false
	}
	l, found := s.listings.UpdateStatus(id, status)
	if !found {
		s.log.Debug("moderation target not found",
			zap.Int("listing_id", id),
			zap.String("status", string(status)))
		return models.Listing{}, false
	}
	s.audit.ListingModerated(ctx, admin, event, l)
	return l, true
}

// Delete removes the listing permanently.
func (s *Service) Delete(ctx context.Context, admin models.Admin, id int) (models.Listing, bool) {
	l, found := s.listings.Remove(id)
	if !found {
		s.log.Debug("delete target not found", zap.Int("listing_id", id))
		return models.Listing{}, false
	}
	s.audit.ListingModerated(ctx, admin, auditlog.EventListingDeleted, l)
	return l, true
}
