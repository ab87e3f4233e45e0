package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvoronin/estate-keeper/internal/config"
	"github.com/mvoronin/estate-keeper/internal/logger"
	"github.com/mvoronin/estate-keeper/internal/utils"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestScraper(t *testing.T, handler http.HandlerFunc) *ListingScraper {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.Nop()

	return NewListingScraper(config.Scraper{
		BaseURL:        server.URL,
		APIKey:         "test-api-key",
		RequestTimeout: 2 * time.Second,
	}, log)
}

func respondJSON(t *testing.T, w http.ResponseWriter, payload map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(payload))
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestFetchListing_CanonicalPayload(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{
			"address":     "17 Quai des Fleurs, Paris",
			"bedrooms":    float64(4),
			"bathrooms":   "3.5",
			"livingArea":  "280 m²",
			"images":      []any{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
			"description": "Seine-facing apartment with private terrace.",
			"price":       float64(3200000),
		})
	})

	property, err := scraper.FetchListing(context.Background(), "https://listings.example.com/17-quai")
	require.NoError(t, err)

	assert.Equal(t, "17 Quai des Fleurs, Paris", property.Address)
	assert.Equal(t, "4", property.Bedrooms)
	assert.Equal(t, "3.5", property.Bathrooms)
	assert.Equal(t, "280 m²", property.Area)
	assert.Len(t, property.Images, 2)
	require.NotNil(t, property.CustomPurchasePrice)
	assert.Equal(t, float64(3200000), *property.CustomPurchasePrice)
}

func TestFetchListing_AliasedPayload(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{
			"streetAddress": "Villa Miramar, Cap Ferrat",
			"beds":          "6",
			"baths":         float64(5),
			"area":          float64(450),
			"image":         "https://cdn.example.com/villa.jpg",
			"zestimate":     "12,500,000",
			"rent":          float64(48000),
		})
	})

	property, err := scraper.FetchListing(context.Background(), "https://listings.example.com/miramar")
	require.NoError(t, err)

	assert.Equal(t, "Villa Miramar, Cap Ferrat", property.Address)
	assert.Equal(t, "6", property.Bedrooms)
	assert.Equal(t, "5", property.Bathrooms)
	assert.Equal(t, "450", property.Area)
	assert.Equal(t, []string{"https://cdn.example.com/villa.jpg"}, property.Images)
	require.NotNil(t, property.CustomPurchasePrice)
	assert.Equal(t, float64(12500000), *property.CustomPurchasePrice)
	require.NotNil(t, property.CustomMonthlyRent)
	assert.Equal(t, float64(48000), *property.CustomMonthlyRent)
}

func TestFetchListing_MissingPricesStayNil(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, map[string]any{
			"address": "Price on request, Monaco",
			"price":   "POA",
		})
	})

	property, err := scraper.FetchListing(context.Background(), "https://listings.example.com/poa")
	require.NoError(t, err)

	assert.Nil(t, property.CustomPurchasePrice)
	assert.Nil(t, property.CustomMonthlyRent)
	assert.Nil(t, property.CustomNightlyRate)
}

func TestFetchListing_SignsRequestBody(t *testing.T) {
	var gotSignature, gotAPIKey string
	var gotBody []byte

	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Signature")
		gotAPIKey = r.Header.Get("X-Api-Key")

		var err error
		gotBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)

		respondJSON(t, w, map[string]any{"address": "signed"})
	})

	_, err := scraper.FetchListing(context.Background(), "https://listings.example.com/signed")
	require.NoError(t, err)

	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, utils.HashString(string(gotBody), "test-api-key"), gotSignature)
	assert.JSONEq(t, `{"url":"https://listings.example.com/signed"}`, string(gotBody))
}

func TestFetchListing_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantErr: ErrScraperUnauthorized},
		{name: "forbidden", statusCode: http.StatusForbidden, wantErr: ErrScraperUnauthorized},
		{name: "listing gone", statusCode: http.StatusNotFound, wantErr: ErrListingNotFound},
		{name: "unscrapable page", statusCode: http.StatusUnprocessableEntity, wantErr: ErrListingNotFound},
		{name: "scraper down", statusCode: http.StatusBadGateway, wantErr: ErrScraperUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(test.statusCode)
			})

			_, err := scraper.FetchListing(context.Background(), "https://listings.example.com/x")
			assert.ErrorIs(t, err, test.wantErr)
		})
	}
}

func TestFetchListing_MalformedPayload(t *testing.T) {
	scraper := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := scraper.FetchListing(context.Background(), "https://listings.example.com/x")
	assert.ErrorIs(t, err, ErrMalformedPayload)
}
