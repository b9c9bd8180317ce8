package listingstore_test

import (
	"testing"
	"time"

	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	"github.com/dalemusser/startupbridge/internal/domain/models"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestStore_Add_AssignsFirstID(t *testing.T) {
	store := listingstore.NewWithClock(fixedClock())

	l := store.Add(models.ListingInput{Name: "Acme", Description: "Widgets"})

	if l.ID != 1 {
		t.Errorf("ID: got %d, want 1", l.ID)
	}
	if l.Status != models.StatusPending {
		t.Errorf("Status: got %q, want %q", l.Status, models.StatusPending)
	}
}

func TestStore_Add_IgnoresCallerStatus(t *testing.T) {
	store := listingstore.New()

	for _, st := range []models.ListingStatus{models.StatusApproved, models.StatusRejected, "bogus"} {
		l := store.Add(models.ListingInput{Name: "X", Status: st})
		if l.Status != models.StatusPending {
			t.Errorf("Add with status %q: got %q, want pending", st, l.Status)
		}
	}
}

func TestStore_Add_FillsDefaults(t *testing.T) {
	store := listingstore.NewWithClock(fixedClock())

	l := store.Add(models.ListingInput{Name: "Acme"})

	if l.Revenue != models.NotDisclosed {
		t.Errorf("Revenue: got %q, want %q", l.Revenue, models.NotDisclosed)
	}
	if l.TeamSize != models.NotDisclosed {
		t.Errorf("TeamSize: got %q, want %q", l.TeamSize, models.NotDisclosed)
	}
	if l.BusinessType != models.DefaultBusinessType {
		t.Errorf("BusinessType: got %q, want %q", l.BusinessType, models.DefaultBusinessType)
	}
	if l.Price != models.DefaultPrice {
		t.Errorf("Price: got %q, want %q", l.Price, models.DefaultPrice)
	}
	if l.YearEstablished != 2026 {
		t.Errorf("YearEstablished: got %d, want 2026", l.YearEstablished)
	}
	if l.Highlights == nil || len(l.Highlights) != 0 {
		t.Errorf("Highlights: got %#v, want empty non-nil slice", l.Highlights)
	}
	if !l.CreatedAt.Equal(fixedClock()()) {
		t.Errorf("CreatedAt: got %v", l.CreatedAt)
	}
}

func TestStore_Add_KeepsSuppliedFields(t *testing.T) {
	store := listingstore.New()

	l := store.Add(models.ListingInput{
		Name:            "Acme",
		Revenue:         "$1M/year",
		TeamSize:        "12",
		BusinessType:    "SaaS",
		YearEstablished: 2015,
		Highlights:      []string{"profitable"},
	})

	if l.Revenue != "$1M/year" || l.TeamSize != "12" || l.BusinessType != "SaaS" || l.YearEstablished != 2015 {
		t.Errorf("supplied fields overwritten: %+v", l)
	}
	if len(l.Highlights) != 1 || l.Highlights[0] != "profitable" {
		t.Errorf("Highlights: got %v", l.Highlights)
	}
}

func TestStore_Add_NewestFirst(t *testing.T) {
	store := listingstore.New()

	store.Add(models.ListingInput{Name: "A"})
	store.Add(models.ListingInput{Name: "B"})

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(list))
	}
	if list[0].Name != "B" || list[1].Name != "A" {
		t.Errorf("order: got [%s, %s], want [B, A]", list[0].Name, list[1].Name)
	}
}

func TestStore_Add_IDsIncreaseAfterDelete(t *testing.T) {
	store := listingstore.New()

	a := store.Add(models.ListingInput{Name: "A"})
	b := store.Add(models.ListingInput{Name: "B"})
	store.Remove(a.ID)
	c := store.Add(models.ListingInput{Name: "C"})

	if c.ID <= b.ID {
		t.Errorf("expected id after %d, got %d", b.ID, c.ID)
	}

	seen := map[int]bool{}
	for _, l := range store.List() {
		if seen[l.ID] {
			t.Errorf("duplicate id %d", l.ID)
		}
		seen[l.ID] = true
	}
}

func TestStore_Add_ContinuesAfterSeed(t *testing.T) {
	store := listingstore.New()
	store.Seed([]models.Listing{
		{ID: 4, Name: "Seeded", Status: models.StatusApproved},
		{ID: 9, Name: "Seeded 2", Status: models.StatusApproved},
	})

	l := store.Add(models.ListingInput{Name: "New"})
	if l.ID != 10 {
		t.Errorf("ID: got %d, want 10", l.ID)
	}
	if got := store.List()[0].Name; got != "New" {
		t.Errorf("front of list: got %q, want %q", got, "New")
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	store := listingstore.New()
	l := store.Add(models.ListingInput{Name: "Acme"})

	updated, ok := store.UpdateStatus(l.ID, models.StatusApproved)
	if !ok {
		t.Fatal("expected listing to be found")
	}
	if updated.Status != models.StatusApproved {
		t.Errorf("returned status: got %q", updated.Status)
	}

	got, _ := store.Get(l.ID)
	if got.Status != models.StatusApproved {
		t.Errorf("stored status: got %q, want approved", got.Status)
	}

	// Any status may replace any other.
	if _, ok := store.UpdateStatus(l.ID, models.StatusPending); !ok {
		t.Fatal("expected approved -> pending to be permitted")
	}
	got, _ = store.Get(l.ID)
	if got.Status != models.StatusPending {
		t.Errorf("stored status: got %q, want pending", got.Status)
	}
}

func TestStore_UpdateStatus_UnknownIDLeavesCollection(t *testing.T) {
	store := listingstore.New()
	store.Add(models.ListingInput{Name: "A"})
	store.Add(models.ListingInput{Name: "B"})
	before := store.List()

	if _, ok := store.UpdateStatus(99, models.StatusApproved); ok {
		t.Error("expected unknown id to report not found")
	}

	after := store.List()
	if len(after) != len(before) {
		t.Fatalf("length changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID || before[i].Status != after[i].Status {
			t.Errorf("entry %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestStore_UpdateStatus_UnknownStatus(t *testing.T) {
	store := listingstore.New()
	l := store.Add(models.ListingInput{Name: "A"})

	if _, ok := store.UpdateStatus(l.ID, "archived"); ok {
		t.Error("expected unknown status to be rejected")
	}
	got, _ := store.Get(l.ID)
	if got.Status != models.StatusPending {
		t.Errorf("status: got %q, want pending", got.Status)
	}
}

func TestStore_Remove(t *testing.T) {
	store := listingstore.New()
	a := store.Add(models.ListingInput{Name: "A"})
	store.Add(models.ListingInput{Name: "B"})

	removed, ok := store.Remove(a.ID)
	if !ok || removed.Name != "A" {
		t.Fatalf("Remove: got (%+v, %v)", removed, ok)
	}
	if _, ok := store.Get(a.ID); ok {
		t.Error("expected removed listing to be gone")
	}
	if store.Len() != 1 {
		t.Errorf("Len: got %d, want 1", store.Len())
	}

	if _, ok := store.Remove(a.ID); ok {
		t.Error("expected second remove to be a no-op")
	}
	if store.Len() != 1 {
		t.Errorf("Len after no-op: got %d, want 1", store.Len())
	}
}

func TestStore_List_ReturnsCopy(t *testing.T) {
	store := listingstore.New()
	store.Add(models.ListingInput{Name: "A", Highlights: []string{"one"}})

	list := store.List()
	list[0].Name = "mutated"
	list[0].Highlights[0] = "mutated"

	got := store.List()[0]
	if got.Name != "A" || got.Highlights[0] != "one" {
		t.Errorf("store mutated through snapshot: %+v", got)
	}
}

func TestStore_Counts(t *testing.T) {
	store := listingstore.New()
	a := store.Add(models.ListingInput{Name: "A"})
	b := store.Add(models.ListingInput{Name: "B"})
	store.Add(models.ListingInput{Name: "C"})
	store.UpdateStatus(a.ID, models.StatusApproved)
	store.UpdateStatus(b.ID, models.StatusRejected)

	got := store.Counts()
	want := listingstore.Stats{Total: 3, Pending: 1, Approved: 1, Rejected: 1}
	if got != want {
		t.Errorf("Counts: got %+v, want %+v", got, want)
	}
}
