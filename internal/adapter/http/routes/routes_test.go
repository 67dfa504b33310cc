package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tiffin_tales/internal/adapter/persistence/repository"
	"tiffin_tales/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionBody struct {
	SessionID string `json:"session_id"`
	Rows      []struct {
		ID string `json:"id"`
	} `json:"rows"`
	Estimate struct {
		SubtotalFormatted   string `json:"subtotal_formatted"`
		TaxFormatted        string `json:"tax_formatted"`
		GrandTotalFormatted string `json:"grand_total_formatted"`
	} `json:"estimate"`
	CanAddRow  bool   `json:"can_add_row"`
	AddedRowID string `json:"added_row_id"`
	Applied    *bool  `json:"applied"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h, err := NewHandlers(config.Defaults(), repository.NewSessionMemoryRepository())
	require.NoError(t, err)
	return NewRouter(h)
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, sessionBody) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var res sessionBody
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	}
	return w, res
}

func TestRouter_Ping(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_EstimatorFlow(t *testing.T) {
	r := newTestRouter(t)

	w, s := do(t, r, http.MethodPost, "/v1/estimator/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.Rows, 1)
	assert.False(t, s.CanAddRow)
	base := "/v1/estimator/sessions/" + s.SessionID
	firstRow := s.Rows[0].ID

	w, _ = do(t, r, http.MethodGet, base+"/quote", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w, _ = do(t, r, http.MethodPost, base+"/rows", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, s = do(t, r, http.MethodPatch, base+"/rows/"+firstRow, `{"field":"days","value":"20"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.Applied)
	assert.True(t, *s.Applied)
	assert.Equal(t, "$160.00", s.Estimate.SubtotalFormatted)
	assert.Equal(t, "$19.20", s.Estimate.TaxFormatted)
	assert.Equal(t, "$179.20", s.Estimate.GrandTotalFormatted)

	w, s = do(t, r, http.MethodPatch, base+"/rows/"+firstRow, `{"field":"people","value":"abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.Applied)
	assert.False(t, *s.Applied)
	assert.Equal(t, "$179.20", s.Estimate.GrandTotalFormatted)

	w, s = do(t, r, http.MethodPost, base+"/rows", `{"plan":"deluxe"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, s.Rows, 2)
	second := s.AddedRowID

	w, s = do(t, r, http.MethodPatch, base+"/rows/"+second, `{"field":"days","value":20}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "$470.40", s.Estimate.GrandTotalFormatted)

	w, s = do(t, r, http.MethodDelete, base+"/rows/"+second, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, s.Rows, 1)
	assert.Equal(t, "$179.20", s.Estimate.GrandTotalFormatted)

	w, _ = do(t, r, http.MethodGet, base+"/quote", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="tiffin-tales-budget.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w, _ = do(t, r, http.MethodGet, base+"/quote?format=xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="tiffin-tales-budget.xlsx"`, w.Header().Get("Content-Disposition"))

	w, _ = do(t, r, http.MethodGet, base+"/quote?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_UnknownSession(t *testing.T) {
	r := newTestRouter(t)
	w, _ := do(t, r, http.MethodGet, "/v1/estimator/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_StatelessEstimate(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/estimates",
		bytes.NewBufferString(`{"rows":[{"people":1,"unit_price":8,"days":20},{"people":2,"unit_price":10,"days":5}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "$260.00", res["subtotal_formatted"])
	assert.Equal(t, "$31.20", res["tax_formatted"])
	assert.Equal(t, "$291.20", res["grand_total_formatted"])
}

func TestRouter_Catalog(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/catalog/plans/basic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/catalog/plans/family", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewSessionRepository_UnknownStore(t *testing.T) {
	cfg := config.Defaults()
	cfg.Session.Store = "postgres"
	_, err := newSessionRepository(t.Context(), cfg)
	assert.Error(t, err)
}
