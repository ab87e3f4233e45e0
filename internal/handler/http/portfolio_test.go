package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func TestPortfolio_ReturnsRenderedPage(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.portfolio.EXPECT().
		GetPortfolio(gomock.Any(), "alexander-thompson").
		Return(models.Portfolio{
			ClientName: "Alexander Thompson",
			Properties: []models.PortfolioProperty{
				{PropertyID: "prop-1", Address: "Villa Azure, Cap Ferrat"},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/alexander-thompson", nil)
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var page models.Portfolio
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &page))
	assert.Equal(t, "Alexander Thompson", page.ClientName)
	require.Len(t, page.Properties, 1)
	assert.Equal(t, "Villa Azure, Cap Ferrat", page.Properties[0].Address)
}

func TestPortfolio_UnknownSlug(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.portfolio.EXPECT().
		GetPortfolio(gomock.Any(), "nobody").
		Return(models.Portfolio{}, store.ErrClientNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/portfolio/nobody", nil)
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
