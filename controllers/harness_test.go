package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"huile-de-sfax/controllers"
	"huile-de-sfax/middleware"
	"huile-de-sfax/models"
	"huile-de-sfax/routes"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

const (
	testAdminUsername = "admin"
	testAdminPassword = "s3cret-olive"
	testNotifyEmail   = "owner@huiledesfax.com"
)

type recordingNotifier struct {
	recipients []string
	messages   []models.ContactMessage
	err        error
}

func (n *recordingNotifier) SendContactNotification(toEmail string, message models.ContactMessage) error {
	n.recipients = append(n.recipients, toEmail)
	n.messages = append(n.messages, message)
	return n.err
}

type apiHarness struct {
	router   *mux.Router
	database *store.MemoryDatabase
	notifier *recordingNotifier
}

func buildAPIHarness(t *testing.T) apiHarness {
	t.Helper()
	notifier := &recordingNotifier{}
	api := buildAPIHarnessWithNotifier(t, notifier, time.Second)
	api.notifier = notifier
	return api
}

func buildAPIHarnessWithNotifier(t *testing.T, notifier controllers.ContactNotifier, notifyTimeout time.Duration) apiHarness {
	t.Helper()

	logger := zap.NewNop()
	database := store.NewMemoryDatabase()
	validator := utils.NewValidator()
	tokens := utils.NewTokenSigner("harness-secret")
	contact := controllers.NewContactController(database, validator, logger, notifier, testNotifyEmail).
		WithNotifyTimeout(notifyTimeout)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Contact:     contact,
		OliveOil:    controllers.NewOliveOilController(database, validator, logger),
		Kitchenware: controllers.NewKitchenwareController(database, validator, logger),
		Settings:    controllers.NewSettingsController(database, validator, logger),
		Admin:       controllers.NewAdminController(tokens, controllers.NewSeeder(database, logger), logger),
	}, middleware.NewAdminAuth(middleware.AdminCredentials{
		Username: testAdminUsername,
		Password: testAdminPassword,
	}, tokens, logger))

	return apiHarness{router: router, database: database}
}

func (h apiHarness) request(t *testing.T, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var requestBody io.Reader
	if body != nil {
		switch typed := body.(type) {
		case string:
			requestBody = bytes.NewBufferString(typed)
		default:
			encoded, err := json.Marshal(body)
			require.NoError(t, err)
			requestBody = bytes.NewReader(encoded)
		}
	}
	request := httptest.NewRequest(method, path, requestBody)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if admin {
		request.SetBasicAuth(testAdminUsername, testAdminPassword)
	}
	recorder := httptest.NewRecorder()
	h.router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value), recorder.Body.String())
	return value
}

type detailBody struct {
	Detail string             `json:"detail"`
	Errors []utils.FieldError `json:"errors"`
}
