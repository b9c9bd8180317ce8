// internal/app/features/needs/handler.go
package needs

import (
	"net/http"
	"strconv"

	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/htmlsanitize"
	"github.com/dalemusser/startupbridge/internal/app/system/inputval"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/paging"
	"github.com/dalemusser/startupbridge/internal/app/system/search"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	maxTitleLen       = 120
	maxDescriptionLen = 5000
	maxFieldLen       = 200
)

// Handler serves the needs board and the "register a need" form.
type Handler struct {
	Needs  *needstore.Store
	Audit  *auditlog.Logger
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(needs *needstore.Store, audit *auditlog.Logger, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Needs:  needs,
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}

type listResponse struct {
	Needs []models.Need `json:"needs"`
	Page  paging.Info   `json:"page"`
}

type validationResponse struct {
	Error  string                `json:"error"`
	Fields []inputval.FieldError `json:"fields"`
}

type submitResponse struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Need        models.Need `json:"need"`
}

func publicView(n models.Need) models.Need {
	n.ContactEmail = ""
	return n
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /needs – browse                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeList filters the board by ?q=, ?type= and ?country=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	matched := search.Needs(h.Needs.List(), search.NeedCriteria{
		Text:    query.Search(r, "q"),
		Type:    query.Get(r, "type"),
		Country: query.Get(r, "country"),
	})
	rows, info := paging.Page(matched, paging.ParseStart(r), paging.ParseLimit(r, paging.PageSize))

	out := make([]models.Need, len(rows))
	for i, n := range rows {
		out[i] = publicView(n)
	}
	jsonutil.Write(w, http.StatusOK, listResponse{Needs: out, Page: info})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /needs/{id} – detail                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		jsonutil.Error(w, http.StatusNotFound, "Need not found.")
		return
	}
	n, ok := h.Needs.Get(id)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Need not found.")
		return
	}
	jsonutil.Write(w, http.StatusOK, publicView(n))
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /needs – register a need                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleSubmit posts a need after the submit delay. Needs are not
// moderated, so the posting is public as soon as this returns.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in models.NeedInput
	if err := jsonutil.Decode(w, r, &in); err != nil {
		h.ErrLog.LogBadRequest(w, r, "need submission: bad body", err, "The submission could not be read.")
		return
	}

	htmlsanitize.Fields(&in.Title, &in.Type, &in.Description, &in.BusinessName,
		&in.Country, &in.BusinessType, &in.ContactEmail)
	// The posting date is always the server's.
	in.PostedDate = ""

	if res := validate(in); res.HasErrors() {
		jsonutil.Write(w, http.StatusBadRequest, validationResponse{Error: res.First(), Fields: res.Errors})
		return
	}

	if err := timeouts.Delay(r.Context(), timeouts.SubmitDelay()); err != nil {
		h.ErrLog.LogCancelled(r, "need submission abandoned", err)
		return
	}

	n := h.Needs.Add(in)
	h.Audit.NeedPosted(r.Context(), r, n)
	h.Log.Info("need posted", zap.Int("need_id", n.ID), zap.String("type", n.Type))

	jsonutil.Write(w, http.StatusCreated, submitResponse{
		Title:       "Need Registered",
		Description: "Your business need has been successfully registered.",
		Need:        n,
	})
}

func validate(in models.NeedInput) *inputval.Result {
	res := &inputval.Result{}
	if res.Required("title", "Title", in.Title) {
		res.MaxLen("title", "Title", in.Title, maxTitleLen)
	}
	if res.Required("type", "Need type", in.Type) {
		res.OneOf("type", "Need type", in.Type, models.NeedTypes)
	}
	if res.Required("description", "Description", in.Description) {
		res.MaxLen("description", "Description", in.Description, maxDescriptionLen)
	}
	if res.Required("businessName", "Business name", in.BusinessName) {
		res.MaxLen("businessName", "Business name", in.BusinessName, maxFieldLen)
	}
	if res.Required("country", "Country", in.Country) {
		res.OneOf("country", "Country", in.Country, models.Countries)
	}
	if res.Required("contactEmail", "Contact email", in.ContactEmail) {
		res.Email("contactEmail", in.ContactEmail)
	}
	res.OneOf("businessType", "Business type", in.BusinessType, models.BusinessTypes)
	return res
}
