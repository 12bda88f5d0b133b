package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"fieldops-backend/internal/domain/store"
	visitDomain "fieldops-backend/internal/domain/visit"
	visituc "fieldops-backend/internal/usecase/visit"
)

// Visitor roles allowed to run check visits.
var visitorRoles = map[string]bool{"driver": true, "biker": true}

type VisitHandler struct {
	loader    *visituc.Loader
	submitter *visituc.Submitter
}

func NewVisitHandler(loader *visituc.Loader, submitter *visituc.Submitter) *VisitHandler {
	return &VisitHandler{loader: loader, submitter: submitter}
}

// StartVisit loads reference data for a store and returns the seeded draft.
func (h *VisitHandler) StartVisit(c echo.Context) error {
	storeID := c.Param("store_id")
	if !reHex32.MatchString(storeID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store_id"})
	}

	sess, err := h.loader.Start(c.Request().Context(), storeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load store data"})
	}
	return c.JSON(http.StatusOK, sess.Draft())
}

type submitVisitReq struct {
	Billing           string                              `json:"billing" validate:"omitempty,oneof=bill pay_upfront"`
	Stickers          map[uint64]visituc.StickerChecklist `json:"stickers"`
	Inventory         map[uint64]int                      `json:"inventory"`
	Contacts          []visituc.ContactForm               `json:"contacts"`
	Questionnaire     *visituc.QuestionnaireForm          `json:"questionnaire"`
	InternalNotes     string                              `json:"internal_notes"`
	RelationshipNotes string                              `json:"relationship_notes"`
	FollowUpNotes     string                              `json:"follow_up_notes"`
	FollowUpDate      *time.Time                          `json:"follow_up_date"`
}

// SubmitVisit converts the posted draft into a Visit + ChangeList chain.
// Identity comes from the Ax-Visitor-Id / Ax-Visitor-Role headers; the
// idempotency middleware in front of this route already requires the id
// header for its key.
func (h *VisitHandler) SubmitVisit(c echo.Context) error {
	storeID := c.Param("store_id")
	if !reHex32.MatchString(storeID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid store_id"})
	}

	ident := visituc.Identity{
		VisitorID: strings.TrimSpace(c.Request().Header.Get("Ax-Visitor-Id")),
		Role:      strings.TrimSpace(c.Request().Header.Get("Ax-Visitor-Role")),
	}
	if !reHex32.MatchString(ident.VisitorID) || !visitorRoles[ident.Role] {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	}

	var req submitVisitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if q := req.Questionnaire; q != nil {
		switch q.SecurityLevel {
		case "", store.SecurityLow, store.SecurityMedium, store.SecurityHigh:
		default:
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "validation failed",
				Details: []FieldError{{Field: "security_level", Message: "must be one of: low medium high"}},
			})
		}
	}

	ctx := c.Request().Context()
	sess, err := h.loader.Start(ctx, storeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load store data"})
	}

	if err := applyDraft(sess, &req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "inventory", Message: err.Error()}},
		})
	}

	res, err := h.submitter.Submit(ctx, sess, ident)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, res)
	case errors.Is(err, visitDomain.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not authenticated"})
	default:
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "could not submit changes, please try again"})
	}
}

// applyDraft overlays the posted fields onto the freshly seeded session
// draft. Store identity stays server-resolved; clients cannot move a draft to
// another store.
func applyDraft(sess *visituc.Session, req *submitVisitReq) error {
	if req.Billing != "" {
		sess.SetBilling(visituc.BillingMethod(req.Billing))
	}
	for brandID, checklist := range req.Stickers {
		sess.SetStickers(brandID, checklist)
	}
	for productID, count := range req.Inventory {
		if _, err := sess.SetInventoryCount(productID, count); err != nil {
			return err
		}
	}
	d := sess.Draft()
	if req.Contacts != nil {
		d.Contacts = req.Contacts
	}
	if req.Questionnaire != nil {
		q := *req.Questionnaire
		// Omitted fields decode to zero values; restore the no-change
		// baseline so they are not compiled into proposed changes.
		if q.StoreCount < 1 {
			q.StoreCount = 1
		}
		if q.SecurityLevel == "" {
			q.SecurityLevel = store.SecurityMedium
		}
		sess.SetQuestionnaire(q)
	}
	sess.SetNotes(req.InternalNotes, req.RelationshipNotes, req.FollowUpNotes)
	d.FollowUpDate = req.FollowUpDate
	return nil
}
