// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mvoronin/estate-keeper/internal/service"
	"github.com/mvoronin/estate-keeper/internal/store"
	"github.com/mvoronin/estate-keeper/models"
)

func signedToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

func TestRegister_ReturnsBearerToken(t *testing.T) {
	svcs, router := newTestRouter(t)

	registered := models.Manager{ManagerID: testManagerID, Email: "anna@estate.example", Name: "Anna"}
	svcs.auth.EXPECT().
		RegisterManager(gomock.Any(), models.Manager{Email: "anna@estate.example", Name: "Anna"}, "secret").
		Return(registered, nil)
	svcs.auth.EXPECT().
		CreateToken(gomock.Any(), registered).
		Return(signedToken("signed-jwt"), nil)

	body := `{"email":"anna@estate.example","name":"Anna","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer signed-jwt", recorder.Header().Get("Authorization"))
}

func TestRegister_EmailConflict(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.auth.EXPECT().
		RegisterManager(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Manager{}, store.ErrEmailAlreadyExists)

	body := `{"email":"anna@estate.example","name":"Anna","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRegister_InvalidJSON(t *testing.T) {
	_, router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	svcs, router := newTestRouter(t)

	svcs.auth.EXPECT().
		Login(gomock.Any(), "anna@estate.example", "wrong").
		Return(models.Manager{}, service.ErrWrongPassword)

	body := `{"email":"anna@estate.example","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "invalid email/password")
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	svcs, router := newTestRouter(t)

	found := models.Manager{ManagerID: testManagerID, Email: "anna@estate.example"}
	svcs.auth.EXPECT().
		Login(gomock.Any(), "anna@estate.example", "secret").
		Return(found, nil)
	svcs.auth.EXPECT().
		CreateToken(gomock.Any(), found).
		Return(signedToken("signed-jwt"), nil)

	body := `{"email":"anna@estate.example","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))

	recorder := doRequest(router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer signed-jwt", recorder.Header().Get("Authorization"))
}
