package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kishorwakchaure727-maker/corpnorm-ai/internal/model"
)

type fixedResolver struct {
	out  model.OutputRecord
	last model.RawRecord
}

func (f *fixedResolver) Resolve(_ context.Context, rec model.RawRecord) model.OutputRecord {
	f.last = rec
	out := f.out
	out.RawName = rec.RawName
	return out
}

func postResolve(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/resolve", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	handler := New(&fixedResolver{}, nil).Router()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestResolve_FreeDefault(t *testing.T) {
	free := &fixedResolver{out: model.OutputRecord{
		NormalizedName:  "ACME",
		Website:         "https://www.acme.com",
		ConfidenceScore: "0.90",
	}}
	handler := New(free, nil).Router()

	rec := postResolve(t, handler, `{"raw_name": "Acme Co., Ltd.", "address": {"city": "Berlin"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.OutputRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Acme Co., Ltd.", out.RawName)
	assert.Equal(t, "ACME", out.NormalizedName)
	assert.Equal(t, "Berlin", free.last.Address.City)
}

func TestResolve_PremiumMode(t *testing.T) {
	free := &fixedResolver{}
	premium := &fixedResolver{out: model.OutputRecord{ConfidenceScore: "High (AI)"}}
	handler := New(free, premium).Router()

	rec := postResolve(t, handler, `{"raw_name": "Acme", "mode": "premium"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out model.OutputRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "High (AI)", out.ConfidenceScore)
	assert.Equal(t, "Acme", premium.last.RawName)
	assert.Empty(t, free.last.RawName, "free resolver not consulted")
}

func TestResolve_PremiumUnconfigured(t *testing.T) {
	handler := New(&fixedResolver{}, nil).Router()

	rec := postResolve(t, handler, `{"raw_name": "Acme", "mode": "premium"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "premium mode is not configured")
}

func TestResolve_BadRequests(t *testing.T) {
	handler := New(&fixedResolver{}, nil).Router()

	rec := postResolve(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postResolve(t, handler, `{"address": {"city": "Berlin"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "raw_name is required")

	rec = postResolve(t, handler, `{"raw_name": "Acme", "mode": "turbo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mode must be free or premium")
}

func TestCORSPreflight(t *testing.T) {
	handler := New(&fixedResolver{}, nil).Router()

	req := httptest.NewRequest(http.MethodOptions, "/resolve", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
