// internal/app/resources/resources.go
package resources

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dalemusser/startupbridge/internal/domain/models"
)

// Embed the demo catalog.
//
//go:embed seed/*.json
var FS embed.FS

// Catalog is the demo data loaded into empty stores at startup.
type Catalog struct {
	Listings []models.Listing
	Needs    []models.Need
}

var (
	loadOnce sync.Once
	catalog  Catalog
	loadErr  error
)

// LoadCatalog parses the embedded seed files once. Callers get fresh
// slices, so seeding one store never aliases another's data.
func LoadCatalog() (Catalog, error) {
	loadOnce.Do(func() {
		loadErr = decode("seed/listings.json", &catalog.Listings)
		if loadErr == nil {
			loadErr = decode("seed/needs.json", &catalog.Needs)
		}
	})
	if loadErr != nil {
		return Catalog{}, loadErr
	}

	out := Catalog{
		Listings: make([]models.Listing, len(catalog.Listings)),
		Needs:    append([]models.Need(nil), catalog.Needs...),
	}
	for i, l := range catalog.Listings {
		l.Highlights = append([]string{}, l.Highlights...)
		out.Listings[i] = l
	}
	return out, nil
}

func decode(name string, dst any) error {
	b, err := FS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
