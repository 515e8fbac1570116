package controllers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"huile-de-sfax/models"
)

type sessionBody struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Token         string `json:"token"`
}

func TestLoginIssuesUsableToken(t *testing.T) {
	api := buildAPIHarness(t)

	response := api.request(t, http.MethodPost, "/api/admin/login", nil, true)
	require.Equal(t, http.StatusOK, response.Code)
	session := decodeBody[sessionBody](t, response)
	require.True(t, session.Authenticated)
	require.Equal(t, testAdminUsername, session.Username)
	require.NotEmpty(t, session.Token)

	request := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	request.Header.Set("Authorization", "Bearer "+session.Token)
	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, testAdminUsername, decodeBody[sessionBody](t, recorder).Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	api := buildAPIHarness(t)

	request := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	request.SetBasicAuth(testAdminUsername, "wrong")
	recorder := httptest.NewRecorder()
	api.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.JSONEq(t, `{"detail":"Invalid credentials"}`, recorder.Body.String())
}

func TestInitProductsIsIdempotent(t *testing.T) {
	api := buildAPIHarness(t)

	for n := 0; n < 2; n++ {
		response := api.request(t, http.MethodPost, "/api/admin/init-products", nil, true)
		require.Equal(t, http.StatusOK, response.Code)
		require.JSONEq(t, `{"success":true,"message":"Products initialized"}`, response.Body.String())
	}

	oil := decodeBody[[]models.OliveOilProduct](t, api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true))
	require.Len(t, oil, len(models.DefaultOliveOilProducts()))
	ids := map[string]bool{}
	for i, product := range oil {
		require.Equal(t, i, product.Order)
		require.NotEmpty(t, product.ID)
		ids[product.ID] = true
	}
	require.Len(t, ids, len(oil))

	kitchen := decodeBody[[]models.KitchenwareProduct](t, api.request(t, http.MethodGet, "/api/admin/kitchenware", nil, true))
	require.Len(t, kitchen, len(models.DefaultKitchenwareProducts()))
}

func TestInitProductsLeavesPopulatedCatalogAlone(t *testing.T) {
	api := buildAPIHarness(t)
	response := api.request(t, http.MethodPost, "/api/admin/olive-oil", newOliveOilPayload("ONLY", 0, true), true)
	require.Equal(t, http.StatusOK, response.Code)

	response = api.request(t, http.MethodPost, "/api/admin/init-products", nil, true)
	require.Equal(t, http.StatusOK, response.Code)

	oil := decodeBody[[]models.OliveOilProduct](t, api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true))
	require.Len(t, oil, 1)
	kitchen := decodeBody[[]models.KitchenwareProduct](t, api.request(t, http.MethodGet, "/api/admin/kitchenware", nil, true))
	require.Len(t, kitchen, len(models.DefaultKitchenwareProducts()))
}

func TestInitProductsStoreFailure(t *testing.T) {
	api := buildAPIHarness(t)
	api.database.Fail(errors.New("no reachable servers"))

	response := api.request(t, http.MethodPost, "/api/admin/init-products", nil, true)
	require.Equal(t, http.StatusInternalServerError, response.Code)
	require.JSONEq(t, `{"detail":"Internal server error"}`, response.Body.String())
}

func TestRootAndHealth(t *testing.T) {
	api := buildAPIHarness(t)

	response := api.request(t, http.MethodGet, "/api/health", nil, false)
	require.JSONEq(t, `{"status":"healthy","service":"Huile de Sfax API"}`, response.Body.String())

	response = api.request(t, http.MethodGet, "/api/", nil, false)
	require.JSONEq(t, `{"message":"Huile de Sfax API - Welcome"}`, response.Body.String())
}
