package needstore_test

import (
	"testing"
	"time"

	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/domain/models"
)

func TestStore_Add(t *testing.T) {
	now := time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC)
	store := needstore.NewWithClock(func() time.Time { return now })

	first := store.Add(models.NeedInput{Title: "Marketing partner", Type: "Marketing"})
	second := store.Add(models.NeedInput{Title: "Seed round", Type: "Investment", PostedDate: "2026-04-30"})

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids: got %d, %d; want 1, 2", first.ID, second.ID)
	}
	if first.PostedDate != "2026-05-02" {
		t.Errorf("default PostedDate: got %q", first.PostedDate)
	}
	if second.PostedDate != "2026-04-30" {
		t.Errorf("supplied PostedDate: got %q", second.PostedDate)
	}

	list := store.List()
	if len(list) != 2 || list[0].ID != second.ID {
		t.Errorf("expected newest first, got %+v", list)
	}
}

func TestStore_Get(t *testing.T) {
	store := needstore.New()
	store.Seed([]models.Need{{ID: 7, Title: "Advisor"}})

	n, ok := store.Get(7)
	if !ok || n.Title != "Advisor" {
		t.Errorf("Get(7): got (%+v, %v)", n, ok)
	}
	if _, ok := store.Get(8); ok {
		t.Error("expected Get(8) to miss")
	}

	added := store.Add(models.NeedInput{Title: "Logistics"})
	if added.ID != 8 {
		t.Errorf("ID after seed: got %d, want 8", added.ID)
	}
	if store.Len() != 2 {
		t.Errorf("Len: got %d, want 2", store.Len())
	}
}
