package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"loanflow.backend/internal/usecases"
)

func emiRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAmortizationHandler(usecases.NewAmortizationEngine())
	r := gin.New()
	r.GET("/emi", h.ComputeEMI)
	r.GET("/emi/preview", h.Preview)
	r.GET("/emi/schedule", h.Schedule)
	return r
}

func TestComputeEMI(t *testing.T) {
	r := emiRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/emi?principal=5300000&annualRate=8.15&termMonths=360", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		EMI   float64 `json:"emi"`
		Range struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		} `json:"range"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Greater(t, body.EMI, 0.0)
	assert.InDelta(t, body.EMI*0.5, body.Range.Min, 0.01)
	assert.InDelta(t, body.EMI*1.5, body.Range.Max, 0.01)
}

func TestComputeEMI_BadQuery(t *testing.T) {
	r := emiRouter()

	for _, q := range []string{
		"",
		"principal=abc&annualRate=8.15&termMonths=360",
		"principal=5300000&annualRate=8.15&termMonths=1.5",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/emi?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, w.Body.String(), "BAD_REQUEST")
	}
}

func TestComputeEMI_RejectsNonPositiveInputs(t *testing.T) {
	r := emiRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/emi?principal=-1&annualRate=8.15&termMonths=360", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreview(t *testing.T) {
	r := emiRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/emi/preview?principal=5300000&annualRate=8.15&termMonths=360", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Rows, 4)
}

func TestSchedule(t *testing.T) {
	r := emiRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
		"/emi/schedule?principal=5300000&annualRate=8.15&termMonths=24", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Rows, 24)
}
