package moderation_test

import (
	"context"
	"testing"

	"github.com/dalemusser/startupbridge/internal/app/store/activity"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/moderation"
	"github.com/dalemusser/startupbridge/internal/app/system/search"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

var admin = models.Admin{ID: 1, Email: "admin@startupbridge.com", Name: "Admin User", Role: models.RoleAdmin}

func setup(t *testing.T) (*moderation.Service, *listingstore.Store, *activity.Store) {
	t.Helper()
	listings := listingstore.New()
	acts := activity.New(activity.DefaultCapacity)
	audit := auditlog.New(acts, zap.NewNop(), auditlog.Config{Moderation: auditlog.ModeStore})
	return moderation.New(listings, audit, zap.NewNop()), listings, acts
}

func inSearch(listings []models.Listing, status models.ListingStatus, id int) bool {
	for _, l := range search.Listings(listings, search.ListingCriteria{Status: status}) {
		if l.ID == id {
			return true
		}
	}
	return false
}

func TestApprove_AcmeScenario(t *testing.T) {
	svc, listings, acts := setup(t)
	ctx := context.Background()

	acme := listings.Add(models.ListingInput{Name: "Acme", Description: "Widgets", Country: "Canada", Industry: "SaaS"})
	if acme.ID != 1 || acme.Status != models.StatusPending {
		t.Fatalf("added = id %d status %q; want 1 pending", acme.ID, acme.Status)
	}
	if inSearch(listings.List(), models.StatusApproved, 1) {
		t.Fatal("pending listing visible in approved search")
	}

	got, ok := svc.Approve(ctx, admin, 1)
	if !ok || got.Status != models.StatusApproved {
		t.Fatalf("Approve = %+v, %v", got, ok)
	}
	if !inSearch(listings.List(), models.StatusApproved, 1) {
		t.Error("approved listing missing from approved search")
	}
	if inSearch(listings.List(), models.StatusPending, 1) {
		t.Error("approved listing still in pending search")
	}

	recent := acts.Recent(0)
	if len(recent) != 1 || recent[0].Action != models.ActionApproved || recent[0].BusinessName != "Acme" || recent[0].AdminName != "Admin User" {
		t.Errorf("activity = %+v", recent)
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name   string
		apply  func(*moderation.Service, int) (models.Listing, bool)
		status models.ListingStatus
		action string
	}{
		{"reject", func(s *moderation.Service, id int) (models.Listing, bool) {
			return s.Reject(context.Background(), admin, id)
		}, models.StatusRejected, models.ActionRejected},
		{"reopen", func(s *moderation.Service, id int) (models.Listing, bool) {
			return s.Reopen(context.Background(), admin, id)
		}, models.StatusPending, models.ActionReopened},
		{"set approved", func(s *moderation.Service, id int) (models.Listing, bool) {
			return s.SetStatus(context.Background(), admin, id, models.StatusApproved)
		}, models.StatusApproved, models.ActionApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, listings, acts := setup(t)
			l := listings.Add(models.ListingInput{Name: "Acme"})
			listings.UpdateStatus(l.ID, models.StatusApproved)

			got, ok := tt.apply(svc, l.ID)
			if !ok || got.Status != tt.status {
				t.Fatalf("got %+v, %v; want status %q", got, ok, tt.status)
			}
			stored, _ := listings.Get(l.ID)
			if stored.Status != tt.status {
				t.Errorf("stored status = %q", stored.Status)
			}
			if recent := acts.Recent(1); len(recent) != 1 || recent[0].Action != tt.action {
				t.Errorf("activity = %+v, want %s", recent, tt.action)
			}
		})
	}
}

func TestUnknownID_NoChangeNoActivity(t *testing.T) {
	svc, listings, acts := setup(t)
	ctx := context.Background()
	listings.Add(models.ListingInput{Name: "Acme"})
	before := listings.List()

	if _, ok := svc.Approve(ctx, admin, 99); ok {
		t.Error("Approve reported found for unknown id")
	}
	if _, ok := svc.Delete(ctx, admin, 99); ok {
		t.Error("Delete reported found for unknown id")
	}

	after := listings.List()
	if len(after) != len(before) || after[0].Status != before[0].Status {
		t.Error("collection changed")
	}
	if acts.Len() != 0 {
		t.Errorf("activities recorded: %d", acts.Len())
	}
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	svc, listings, acts := setup(t)
	l := listings.Add(models.ListingInput{Name: "Acme"})

	if _, ok := svc.SetStatus(context.Background(), admin, l.ID, "archived"); ok {
		t.Error("SetStatus accepted an unknown status")
	}
	if stored, _ := listings.Get(l.ID); stored.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", stored.Status)
	}
	if acts.Len() != 0 {
		t.Error("activity recorded for rejected status")
	}
}

func TestDelete(t *testing.T) {
	svc, listings, acts := setup(t)
	l := listings.Add(models.ListingInput{Name: "Acme"})

	got, ok := svc.Delete(context.Background(), admin, l.ID)
	if !ok || got.Name != "Acme" {
		t.Fatalf("Delete = %+v, %v", got, ok)
	}
	if listings.Len() != 0 {
		t.Error("listing still present")
	}
	if recent := acts.Recent(0); len(recent) != 1 || recent[0].Action != models.ActionDeleted || recent[0].ListingID != l.ID {
		t.Errorf("activity = %+v", recent)
	}
}
