// internal/app/features/listings/submit.go
package listings

import (
	"net/http"

	"github.com/dalemusser/startupbridge/internal/app/system/htmlsanitize"
	"github.com/dalemusser/startupbridge/internal/app/system/inputval"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

// Oldest founding year a submission may claim.
const minYearEstablished = 1800

const (
	maxNameLen        = 120
	maxDescriptionLen = 5000
	maxFieldLen       = 200
	maxHighlights     = 10
)

type validationResponse struct {
	Error  string                `json:"error"`
	Fields []inputval.FieldError `json:"fields"`
}

type submitResponse struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Listing     models.Listing `json:"listing"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /listings – sell / register a business                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSubmit accepts a business submission. The listing is stored as
// pending whatever status the body carries, after the submit delay.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in models.ListingInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "listing submission: bad body", err, "The submission could not be read.")
		return
	}

	sanitize(&in)
	if res := h.validate(in); res.HasErrors() {
		jsonutil.Write(w, http.StatusBadRequest, validationResponse{Error: res.First(), Fields: res.Errors})
		return
	}

	if err := timeouts.Delay(r.Context(), timeouts.SubmitDelay()); err != nil {
		h.ErrLog.LogCancelled(r, "listing submission abandoned", err)
		return
	}

	l := h.Listings.Add(in)
	h.Audit.ListingSubmitted(r.Context(), r, l)
	h.Log.Info("listing submitted", zap.Int("listing_id", l.ID), zap.String("name", l.Name))

	jsonutil.Write(w, http.StatusCreated, submitResponse{
		Title:       "Registration Submitted",
		Description: "Your business has been submitted for review.",
		Listing:     l,
	})
}

func sanitize(in *models.ListingInput) {
	htmlsanitize.Fields(
		&in.Name, &in.Description, &in.Country, &in.Industry, &in.BusinessType,
		&in.Revenue, &in.TeamSize, &in.Price, &in.WebsiteURL, &in.LogoURL,
		&in.ContactEmail, &in.PitchVideo,
	)
	in.Highlights = htmlsanitize.List(in.Highlights)
}

func (h *Handler) validate(in models.ListingInput) *inputval.Result {
	res := &inputval.Result{}

	if res.Required("name", "Business name", in.Name) {
		res.MaxLen("name", "Business name", in.Name, maxNameLen)
	}
	if res.Required("description", "Description", in.Description) {
		res.MaxLen("description", "Description", in.Description, maxDescriptionLen)
	}
	if res.Required("industry", "Industry", in.Industry) {
		res.OneOf("industry", "Industry", in.Industry, models.Industries)
	}
	if res.Required("country", "Country", in.Country) {
		res.OneOf("country", "Country", in.Country, models.Countries)
	}
	if res.Required("contactEmail", "Contact email", in.ContactEmail) {
		res.Email("contactEmail", in.ContactEmail)
	}
	res.OneOf("businessType", "Business type", in.BusinessType, models.BusinessTypes)
	res.YearRange("yearEstablished", "Year established", in.YearEstablished, minYearEstablished, h.now().Year())
	res.HTTPURL("websiteUrl", "Website", in.WebsiteURL)
	res.HTTPURL("logoUrl", "Logo URL", in.LogoURL)
	for _, f := range []struct{ field, label, v string }{
		{"revenue", "Revenue", in.Revenue},
		{"teamSize", "Team size", in.TeamSize},
		{"price", "Price", in.Price},
		{"pitchVideo", "Pitch video", in.PitchVideo},
	} {
		res.MaxLen(f.field, f.label, f.v, maxFieldLen)
	}
	res.MaxItems("highlights", "Highlights", len(in.Highlights), maxHighlights)
	return res
}
