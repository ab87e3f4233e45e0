package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func TestCreateProperty_Created(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		Return(models.Property{PropertyID: "prop-1", Address: "Villa Azure, Cap Ferrat"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties", strings.NewReader(`{"address":"Villa Azure, Cap Ferrat"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Property
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "prop-1", created.PropertyID)
}

func TestCreateProperty_ValidationRejected(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		Return(models.Property{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties", strings.NewReader(`{}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestScrapeProperty_NoScraperConfigured(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		CreateFromListing(gomock.Any(), "https://listings.example.com/villa").
		Return(models.Property{}, service.ErrScraperNotConfigured)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties/scrape", strings.NewReader(`{"url":"https://listings.example.com/villa"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestScrapeProperty_Created(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		CreateFromListing(gomock.Any(), "https://listings.example.com/villa").
		Return(models.Property{PropertyID: "prop-2", ListingURL: "https://listings.example.com/villa"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/properties/scrape", strings.NewReader(`{"url":"https://listings.example.com/villa"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestGetProperty_NotFound(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		GetProperty(gomock.Any(), "missing").
		Return(models.Property{}, store.ErrPropertyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/properties/missing", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestUpdatePropertyDisplay_NoContent(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		UpdateDisplay(gomock.Any(), "prop-1", gomock.Any()).
		Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/properties/prop-1/display", strings.NewReader(`{"show_address":false}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestDeleteProperty_NoContent(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.properties.EXPECT().
		DeleteProperty(gomock.Any(), "prop-1").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/properties/prop-1", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
