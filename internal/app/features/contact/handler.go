// internal/app/features/contact/handler.go
package contact

import (
	"fmt"
	"net/http"

	errorsfeature "github.com/dalemusser/startupbridge/internal/app/features/errors"
	listingstore "github.com/dalemusser/startupbridge/internal/app/store/listings"
	messagestore "github.com/dalemusser/startupbridge/internal/app/store/messages"
	needstore "github.com/dalemusser/startupbridge/internal/app/store/needs"
	"github.com/dalemusser/startupbridge/internal/app/system/auditlog"
	"github.com/dalemusser/startupbridge/internal/app/system/htmlsanitize"
	"github.com/dalemusser/startupbridge/internal/app/system/inputval"
	"github.com/dalemusser/startupbridge/internal/app/system/jsonutil"
	"github.com/dalemusser/startupbridge/internal/app/system/timeouts"
	"github.com/dalemusser/startupbridge/internal/domain/models"
	"go.uber.org/zap"
)

const (
	maxSubjectLen = 200
	maxMessageLen = 5000
)

// Handler delivers contact messages to listing and need owners without
// revealing their addresses.
type Handler struct {
	Listings *listingstore.Store
	Needs    *needstore.Store
	Messages *messagestore.Store
	Audit    *auditlog.Logger
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(listings *listingstore.Store, needs *needstore.Store, messages *messagestore.Store,
	audit *auditlog.Logger, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Listings: listings,
		Needs:    needs,
		Messages: messages,
		Audit:    audit,
		ErrLog:   errLog,
		Log:      logger,
	}
}

type contactRequest struct {
	RecipientType string `json:"recipientType"`
	RecipientID   int    `json:"recipientId"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	SenderEmail   string `json:"senderEmail"`
}

type validationResponse struct {
	Error  string                `json:"error"`
	Fields []inputval.FieldError `json:"fields"`
}

type sentResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact – message a business or need owner                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := jsonutil.Decode(w, r, &req); err != nil {
		h.ErrLog.LogBadRequest(w, r, "contact: bad body", err, "The message could not be read.")
		return
	}
	if req.RecipientType == "" {
		req.RecipientType = models.RecipientBusiness
	}

	htmlsanitize.Fields(&req.Subject, &req.Message, &req.SenderEmail)
	res := &inputval.Result{}
	res.OneOf("recipientType", "Recipient type", req.RecipientType,
		[]string{models.RecipientBusiness, models.RecipientNeed})
	if res.Required("subject", "Subject", req.Subject) {
		res.MaxLen("subject", "Subject", req.Subject, maxSubjectLen)
	}
	if res.Required("message", "Message", req.Message) {
		res.MaxLen("message", "Message", req.Message, maxMessageLen)
	}
	res.Email("senderEmail", req.SenderEmail)
	if res.HasErrors() {
		jsonutil.Write(w, http.StatusBadRequest, validationResponse{Error: res.First(), Fields: res.Errors})
		return
	}

	name, ok := h.recipientName(req.RecipientType, req.RecipientID)
	if !ok {
		jsonutil.Error(w, http.StatusNotFound, "Recipient not found.")
		return
	}

	if err := timeouts.Delay(r.Context(), timeouts.ContactDelay()); err != nil {
		h.ErrLog.LogCancelled(r, "contact message abandoned", err)
		return
	}

	msg := h.Messages.Add(models.Message{
		RecipientType: req.RecipientType,
		RecipientID:   req.RecipientID,
		RecipientName: name,
		Subject:       req.Subject,
		Body:          req.Message,
		SenderEmail:   req.SenderEmail,
	})
	h.Audit.MessageSent(r.Context(), r, msg)

	jsonutil.Write(w, http.StatusCreated, sentResponse{
		ID:          msg.ID,
		Title:       "Message Sent",
		Description: fmt.Sprintf("Your message to %s has been sent successfully!", name),
	})
}

// recipientName resolves the addressed owner. Only approved listings can
// be contacted; needs are always public.
func (h *Handler) recipientName(kind string, id int) (string, bool) {
	switch kind {
	case models.RecipientBusiness:
		l, ok := h.Listings.Get(id)
		if !ok || l.Status != models.StatusApproved {
			return "", false
		}
		return l.Name, true
	case models.RecipientNeed:
		n, ok := h.Needs.Get(id)
		if !ok {
			return "", false
		}
		return n.BusinessName, true
	}
	return "", false
}
