package controllers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"huile-de-sfax/models"
)

func newOliveOilPayload(sku string, order int, active bool) map[string]any {
	return map[string]any{
		"sku":            sku,
		"name_en":        "Olive oil " + sku,
		"name_fr":        "Huile d'olive " + sku,
		"size":           "1L",
		"description_en": "Cold pressed extra virgin olive oil.",
		"description_fr": "Huile d'olive extra vierge pressée à froid.",
		"image":          "https://cdn.example.com/" + sku + ".jpg",
		"active":         active,
		"order":          order,
	}
}

func TestPublicCatalogFallsBackToDefaults(t *testing.T) {
	api := buildAPIHarness(t)

	oil := decodeBody[models.ProductList[models.OliveOilProduct]](t, api.request(t, http.MethodGet, "/api/products/olive-oil", nil, false))
	require.Len(t, oil.Products, len(models.DefaultOliveOilProducts()))

	kitchen := decodeBody[models.ProductList[models.KitchenwareProduct]](t, api.request(t, http.MethodGet, "/api/products/kitchenware", nil, false))
	require.Len(t, kitchen.Products, len(models.DefaultKitchenwareProducts()))

	stored := decodeBody[[]models.OliveOilProduct](t, api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true))
	require.Empty(t, stored)
}

func TestPublicCatalogListsActiveProductsInOrder(t *testing.T) {
	api := buildAPIHarness(t)

	for _, payload := range []map[string]any{
		newOliveOilPayload("C", 2, true),
		newOliveOilPayload("A", 0, true),
		newOliveOilPayload("HIDDEN", 1, false),
	} {
		response := api.request(t, http.MethodPost, "/api/admin/olive-oil", payload, true)
		require.Equal(t, http.StatusOK, response.Code, response.Body.String())
	}

	public := decodeBody[models.ProductList[models.OliveOilProduct]](t, api.request(t, http.MethodGet, "/api/products/olive-oil", nil, false))
	require.Len(t, public.Products, 2)
	require.Equal(t, "A", public.Products[0].SKU)
	require.Equal(t, "C", public.Products[1].SKU)

	admin := decodeBody[[]models.OliveOilProduct](t, api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true))
	require.Len(t, admin, 3)
	require.Equal(t, "HIDDEN", admin[1].SKU)
}

func TestPublicCatalogIsEmptyWhenEverythingInactive(t *testing.T) {
	api := buildAPIHarness(t)
	response := api.request(t, http.MethodPost, "/api/admin/olive-oil", newOliveOilPayload("OFF", 0, false), true)
	require.Equal(t, http.StatusOK, response.Code)

	public := decodeBody[models.ProductList[models.OliveOilProduct]](t, api.request(t, http.MethodGet, "/api/products/olive-oil", nil, false))
	require.Empty(t, public.Products)
}

func TestCreateProductDefaultsToActive(t *testing.T) {
	api := buildAPIHarness(t)
	payload := newOliveOilPayload("TOO-1000", 3, true)
	delete(payload, "active")

	response := api.request(t, http.MethodPost, "/api/admin/olive-oil", payload, true)
	require.Equal(t, http.StatusOK, response.Code)

	product := decodeBody[models.OliveOilProduct](t, response)
	require.NotEmpty(t, product.ID)
	require.True(t, product.Active)
	require.Equal(t, 3, product.Order)
}

func TestCreateProductRejectsInvalidPayload(t *testing.T) {
	api := buildAPIHarness(t)
	payload := newOliveOilPayload("", -1, true)

	response := api.request(t, http.MethodPost, "/api/admin/olive-oil", payload, true)
	require.Equal(t, http.StatusUnprocessableEntity, response.Code)

	body := decodeBody[detailBody](t, response)
	fields := make([]string, 0, len(body.Errors))
	for _, fieldErr := range body.Errors {
		fields = append(fields, fieldErr.Field)
	}
	require.ElementsMatch(t, []string{"sku", "order"}, fields)
}

func TestUpdateProductMergesSuppliedFields(t *testing.T) {
	api := buildAPIHarness(t)
	created := decodeBody[models.OliveOilProduct](t, api.request(t, http.MethodPost, "/api/admin/olive-oil", newOliveOilPayload("TOO-500", 1, true), true))

	response := api.request(t, http.MethodPut, "/api/admin/olive-oil/"+created.ID, map[string]any{"active": false, "size": "500ml"}, true)
	require.Equal(t, http.StatusOK, response.Code)

	updated := decodeBody[models.OliveOilProduct](t, response)
	require.False(t, updated.Active)
	require.Equal(t, "500ml", updated.Size)
	require.Equal(t, created.NameEN, updated.NameEN)
	require.Equal(t, created.ID, updated.ID)
}

func TestUpdateProductWithoutFields(t *testing.T) {
	api := buildAPIHarness(t)
	created := decodeBody[models.OliveOilProduct](t, api.request(t, http.MethodPost, "/api/admin/olive-oil", newOliveOilPayload("TOO-750", 1, true), true))

	for _, id := range []string{created.ID, "missing"} {
		response := api.request(t, http.MethodPut, "/api/admin/olive-oil/"+id, map[string]any{}, true)
		require.Equal(t, http.StatusBadRequest, response.Code)
		require.JSONEq(t, `{"detail":"No fields to update"}`, response.Body.String())
	}

	response := api.request(t, http.MethodPut, "/api/admin/olive-oil/"+created.ID, nil, true)
	require.Equal(t, http.StatusBadRequest, response.Code)
}

func TestUpdateMissingProduct(t *testing.T) {
	api := buildAPIHarness(t)
	response := api.request(t, http.MethodPut, "/api/admin/kitchenware/missing", map[string]any{"name_en": "Cup"}, true)
	require.Equal(t, http.StatusNotFound, response.Code)
	require.JSONEq(t, `{"detail":"Product not found"}`, response.Body.String())
}

func TestDeleteProductTwice(t *testing.T) {
	api := buildAPIHarness(t)
	payload := map[string]any{
		"reference":      "T13",
		"name_en":        "Classic cup",
		"name_fr":        "Tasse classique",
		"description_en": "Olive wood cup.",
		"description_fr": "Tasse en bois d'olivier.",
		"image":          "https://cdn.example.com/t13.jpg",
		"order":          0,
	}
	created := decodeBody[models.KitchenwareProduct](t, api.request(t, http.MethodPost, "/api/admin/kitchenware", payload, true))
	require.Nil(t, created.Dimensions)

	response := api.request(t, http.MethodDelete, "/api/admin/kitchenware/"+created.ID, nil, true)
	require.Equal(t, http.StatusOK, response.Code)
	require.JSONEq(t, `{"success":true,"message":"Product deleted"}`, response.Body.String())

	response = api.request(t, http.MethodDelete, "/api/admin/kitchenware/"+created.ID, nil, true)
	require.Equal(t, http.StatusNotFound, response.Code)
}

func TestCatalogStoreFailure(t *testing.T) {
	api := buildAPIHarness(t)
	api.database.Fail(errors.New("socket closed"))

	response := api.request(t, http.MethodGet, "/api/products/olive-oil", nil, false)
	require.Equal(t, http.StatusInternalServerError, response.Code)
	require.NotContains(t, response.Body.String(), "socket closed")
}

func TestAdminCatalogRequiresCredentials(t *testing.T) {
	api := buildAPIHarness(t)
	response := api.request(t, http.MethodPost, "/api/admin/olive-oil", newOliveOilPayload("X", 0, true), false)
	require.Equal(t, http.StatusUnauthorized, response.Code)

	stored := decodeBody[[]models.OliveOilProduct](t, api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true))
	require.Empty(t, stored)
}

func TestAdminCatalogListIsBareArray(t *testing.T) {
	api := buildAPIHarness(t)

	response := api.request(t, http.MethodGet, "/api/admin/kitchenware", nil, true)
	require.Equal(t, http.StatusOK, response.Code)
	require.JSONEq(t, `[]`, response.Body.String())

	response = api.request(t, http.MethodPost, "/api/admin/init-products", nil, true)
	require.Equal(t, http.StatusOK, response.Code)

	response = api.request(t, http.MethodGet, "/api/admin/olive-oil", nil, true)
	require.Equal(t, byte('['), response.Body.Bytes()[0])
	require.Len(t, decodeBody[[]models.OliveOilProduct](t, response), len(models.DefaultOliveOilProducts()))
}
