package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pixelhunt/design-backend/internal/dto"
)

func TestRequestHandler_Create_Unauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &RequestHandler{}
	r.POST("/requests", handler.Create)

	req, _ := http.NewRequest("POST", "/requests", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestHandler_Cancel_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &RequestHandler{}
	r.POST("/requests/:id/cancel", func(c *gin.Context) {
		c.Set("userID", uuid.New())
		handler.Cancel(c)
	})

	req, _ := http.NewRequest("POST", "/requests/invalid-uuid/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestHandler_PreviewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &RequestHandler{}
	r.POST("/requests/preview", handler.PreviewQuote)

	body, _ := json.Marshal(dto.PricePreviewRequest{
		BudgetMax:           500,
		RushRequest:         true,
		AdditionalConcepts:  2,
		AdditionalRevisions: 1,
	})
	req, _ := http.NewRequest("POST", "/requests/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var quote dto.QuoteResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 500.0, quote.BasePrice)
	assert.Equal(t, 250.0, quote.RushFee)
	assert.Equal(t, 100.0, quote.ConceptFee)
	assert.Equal(t, 25.0, quote.RevisionFee)
	assert.Equal(t, 875.0, quote.Total)
}

func TestRequestHandler_PreviewQuote_MissingBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &RequestHandler{}
	r.POST("/requests/preview", handler.PreviewQuote)

	req, _ := http.NewRequest("POST", "/requests/preview", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
