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

	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func TestCreateClient_PassesAuthenticatedManager(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.clients.EXPECT().
		CreateClient(gomock.Any(), testManagerID, models.Client{Name: "Alexander Thompson"}).
		Return(models.Client{ClientID: "client-1", Name: "Alexander Thompson", Slug: "alexander-thompson"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clients", strings.NewReader(`{"name":"Alexander Thompson"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var created models.Client
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "alexander-thompson", created.Slug)
}

func TestUpdateClientStatus_Updated(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.clients.EXPECT().
		UpdateStatus(gomock.Any(), "client-1", models.ClientStatusClosed).
		Return(models.Client{ClientID: "client-1", Status: models.ClientStatusClosed}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/admin/clients/client-1/status", strings.NewReader(`{"status":"closed"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestShareClient_AlreadySharedConflict(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.clients.EXPECT().
		ShareClient(gomock.Any(), "client-1", "other-manager", testManagerID).
		Return(models.ClientShare{}, store.ErrAlreadyShared)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/clients/client-1/shares", strings.NewReader(`{"manager_id":"other-manager"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestUnshareClient_NoContent(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.clients.EXPECT().
		UnshareClient(gomock.Any(), "client-1", "other-manager").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/clients/client-1/shares", strings.NewReader(`{"manager_id":"other-manager"}`))
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestDeleteClient_NotFound(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.clients.EXPECT().
		DeleteClient(gomock.Any(), "missing").
		Return(store.ErrClientNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/clients/missing", nil)
	authorize(svcs, req)

	recorder := doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
