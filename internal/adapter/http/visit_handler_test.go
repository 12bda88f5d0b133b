package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	storeDomain "fieldops-backend/internal/domain/store"
	"fieldops-backend/internal/domain/uow"
	visitDomain "fieldops-backend/internal/domain/visit"
	"fieldops-backend/internal/testutil/storemock"
	"fieldops-backend/internal/testutil/uowmock"
	"fieldops-backend/internal/testutil/visitmock"
	visituc "fieldops-backend/internal/usecase/visit"
)

// -------- helpers --------

var (
	testStoreID   = strings.Repeat("a", 32)
	testVisitorID = strings.Repeat("b", 32)
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func visitorHeaders() map[string]string {
	return map[string]string{
		"Ax-Visitor-Id":   testVisitorID,
		"Ax-Visitor-Role": "driver",
	}
}

func seededStoreRepo() *storemock.Repo {
	return &storemock.Repo{
		GetByStoreIDFn: func(_ context.Context, storeID string) (*storeDomain.Store, error) {
			return &storeDomain.Store{ID: 7, StoreID: storeID, Name: "Corner kiosk"}, nil
		},
		ListActiveBrandsFn: func(context.Context) ([]storeDomain.Brand, error) {
			return []storeDomain.Brand{{ID: 1, Name: "Kolibri", Active: true}}, nil
		},
		ListActiveProductsFn: func(context.Context) ([]storeDomain.Product, error) {
			return []storeDomain.Product{
				{ID: 10, Name: "Lighter classic", Active: true},
				{ID: 11, Name: "Lighter slim", Active: true},
			}, nil
		},
	}
}

func newVisitEcho(stores *storemock.Repo, tx uow.UnitOfWork) *echo.Echo {
	e := newEchoWithValidator()
	h := NewVisitHandler(visituc.NewLoader(stores), visituc.NewSubmitter(tx))
	e.GET("/stores/:store_id/visit-draft", h.StartVisit)
	e.POST("/stores/:store_id/visits", h.SubmitVisit)
	return e
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body *bytes.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *stdhttp.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// -------- StartVisit --------

func TestStartVisit_ReturnsSeededDraft(t *testing.T) {
	e := newVisitEcho(seededStoreRepo(), uowmock.New())

	rec := doReq(t, e, stdhttp.MethodGet, "/stores/"+testStoreID+"/visit-draft", nil, nil)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var draft struct {
		Store struct {
			StoreID string `json:"store_id"`
			Name    string `json:"name"`
		} `json:"store"`
		Billing   string         `json:"billing"`
		Stickers  map[string]any `json:"stickers"`
		Inventory map[string]int `json:"inventory"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if draft.Store.StoreID != testStoreID || draft.Store.Name != "Corner kiosk" {
		t.Fatalf("store identity missing: %+v", draft.Store)
	}
	if draft.Billing != "bill" {
		t.Fatalf("billing default = %q", draft.Billing)
	}
	if len(draft.Stickers) != 1 || len(draft.Inventory) != 2 {
		t.Fatalf("seeding wrong: stickers=%d inventory=%d", len(draft.Stickers), len(draft.Inventory))
	}
	if draft.Inventory["10"] != 0 {
		t.Fatalf("inventory must seed at zero: %+v", draft.Inventory)
	}
}

func TestStartVisit_StoreNotFound(t *testing.T) {
	stores := &storemock.Repo{
		GetByStoreIDFn: func(context.Context, string) (*storeDomain.Store, error) {
			return nil, errors.New("no rows")
		},
	}
	e := newVisitEcho(stores, uowmock.New())

	rec := doReq(t, e, stdhttp.MethodGet, "/stores/"+testStoreID+"/visit-draft", nil, nil)
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "store not found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestStartVisit_BadStoreID(t *testing.T) {
	e := newVisitEcho(seededStoreRepo(), uowmock.New())
	rec := doReq(t, e, stdhttp.MethodGet, "/stores/not-hex/visit-draft", nil, nil)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// -------- SubmitVisit --------

func TestSubmitVisit_Success(t *testing.T) {
	visits := &visitmock.VisitRepo{
		CreateFn: func(_ context.Context, v *visitDomain.Visit) error {
			v.ID = 101
			return nil
		},
	}
	var batch []visitDomain.ChangeListItem
	lists := &visitmock.ChangeListRepo{
		CreateFn: func(_ context.Context, cl *visitDomain.ChangeList) error {
			cl.ID = 202
			return nil
		},
		CreateItemsFn: func(_ context.Context, items []visitDomain.ChangeListItem) error {
			batch = items
			return nil
		},
	}
	e := newVisitEcho(seededStoreRepo(), uowmock.Passthrough(uow.Repos{Visits: visits, ChangeLists: lists}))

	body := map[string]any{
		"inventory":      map[string]int{"10": 5, "11": 3},
		"internal_notes": "left samples",
	}
	rec := doReq(t, e, stdhttp.MethodPost, "/stores/"+testStoreID+"/visits", mustJSON(body), visitorHeaders())
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res struct {
		VisitID      string `json:"visit_id"`
		ChangeListID string `json:"change_list_id"`
		ItemCount    int    `json:"item_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ItemCount != 2 || len(res.VisitID) != 32 || len(res.ChangeListID) != 32 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(batch) != 2 {
		t.Fatalf("persisted batch = %d, want 2", len(batch))
	}
	for _, it := range batch {
		if it.EntityType != visitDomain.EntityInventory {
			t.Fatalf("entity type = %q", it.EntityType)
		}
	}
}

func TestSubmitVisit_PartialQuestionnaireKeepsBaseline(t *testing.T) {
	visits := &visitmock.VisitRepo{
		CreateFn: func(_ context.Context, v *visitDomain.Visit) error {
			v.ID = 101
			return nil
		},
	}
	var batch []visitDomain.ChangeListItem
	lists := &visitmock.ChangeListRepo{
		CreateFn: func(_ context.Context, cl *visitDomain.ChangeList) error {
			cl.ID = 202
			return nil
		},
		CreateItemsFn: func(_ context.Context, items []visitDomain.ChangeListItem) error {
			batch = items
			return nil
		},
	}
	e := newVisitEcho(seededStoreRepo(), uowmock.Passthrough(uow.Repos{Visits: visits, ChangeLists: lists}))

	// security_level and store_count omitted; their zero values must fall
	// back to the baseline instead of becoming proposed changes.
	body := map[string]any{
		"questionnaire": map[string]any{"sells_flowers": true},
	}
	rec := doReq(t, e, stdhttp.MethodPost, "/stores/"+testStoreID+"/visits", mustJSON(body), visitorHeaders())
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(batch) != 1 {
		t.Fatalf("persisted batch = %d, want only sells_flowers: %+v", len(batch), batch)
	}
	it := batch[0]
	if it.EntityType != visitDomain.EntityQuestionnaire || it.FieldName != "sells_flowers" {
		t.Fatalf("unexpected item: %+v", it)
	}
}

func TestSubmitVisit_MissingIdentity(t *testing.T) {
	e := newVisitEcho(seededStoreRepo(), uowmock.New())

	tests := []struct {
		name string
		hdr  map[string]string
	}{
		{"no headers", nil},
		{"bad visitor id", map[string]string{"Ax-Visitor-Id": "nope", "Ax-Visitor-Role": "driver"}},
		{"unknown role", map[string]string{"Ax-Visitor-Id": testVisitorID, "Ax-Visitor-Role": "pilot"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doReq(t, e, stdhttp.MethodPost, "/stores/"+testStoreID+"/visits", mustJSON(map[string]any{}), tt.hdr)
			if rec.Code != stdhttp.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestSubmitVisit_ValidationFailures(t *testing.T) {
	e := newVisitEcho(seededStoreRepo(), uowmock.New())

	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad billing", map[string]any{"billing": "barter"}},
		{"negative inventory", map[string]any{"inventory": map[string]int{"10": -2}}},
		{"bad security level", map[string]any{"questionnaire": map[string]any{"security_level": "extreme"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doReq(t, e, stdhttp.MethodPost, "/stores/"+testStoreID+"/visits", mustJSON(tt.body), visitorHeaders())
			if rec.Code != stdhttp.StatusUnprocessableEntity {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestSubmitVisit_WriteFailureIsUniform(t *testing.T) {
	visits := &visitmock.VisitRepo{
		CreateFn: func(context.Context, *visitDomain.Visit) error {
			return errors.New("connection reset")
		},
	}
	e := newVisitEcho(seededStoreRepo(), uowmock.Passthrough(uow.Repos{Visits: visits, ChangeLists: &visitmock.ChangeListRepo{}}))

	rec := doReq(t, e, stdhttp.MethodPost, "/stores/"+testStoreID+"/visits", mustJSON(map[string]any{"inventory": map[string]int{"10": 5}}), visitorHeaders())
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "could not submit changes, please try again") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
