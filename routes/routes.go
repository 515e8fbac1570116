package routes

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"huile-de-sfax/controllers"
	"huile-de-sfax/middleware"
)

// APIPrefix is the common prefix of every route.
const APIPrefix = "/api"

// Controllers groups everything the router dispatches to.
type Controllers struct {
	Contact     *controllers.ContactController
	OliveOil    *controllers.OliveOilController
	Kitchenware *controllers.KitchenwareController
	Settings    *controllers.SettingsController
	Admin       *controllers.AdminController
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, adminAuth *middleware.AdminAuth) {
	api := router.PathPrefix(APIPrefix).Subrouter()

	// Public routes
	api.HandleFunc("/", controllers.Root).Methods(http.MethodGet)
	api.HandleFunc("/health", controllers.Health).Methods(http.MethodGet)
	api.HandleFunc("/contact", c.Contact.SubmitContact).Methods(http.MethodPost)
	api.HandleFunc("/products/olive-oil", c.OliveOil.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/products/kitchenware", c.Kitchenware.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/settings", c.Settings.GetSettings).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth.Middleware)
	admin.HandleFunc("/login", c.Admin.Login).Methods(http.MethodPost)
	admin.HandleFunc("/verify", c.Admin.Verify).Methods(http.MethodGet)
	admin.HandleFunc("/init-products", c.Admin.InitProducts).Methods(http.MethodPost)

	admin.HandleFunc("/messages", c.Contact.GetMessages).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id}/read", c.Contact.MarkRead).Methods(http.MethodPut)
	admin.HandleFunc("/messages/{id}", c.Contact.DeleteMessage).Methods(http.MethodDelete)

	admin.HandleFunc("/olive-oil", c.OliveOil.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/olive-oil", c.OliveOil.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/olive-oil/{id}", c.OliveOil.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/olive-oil/{id}", c.OliveOil.DeleteProduct).Methods(http.MethodDelete)

	admin.HandleFunc("/kitchenware", c.Kitchenware.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/kitchenware", c.Kitchenware.CreateProduct).Methods(http.MethodPost)
	admin.HandleFunc("/kitchenware/{id}", c.Kitchenware.UpdateProduct).Methods(http.MethodPut)
	admin.HandleFunc("/kitchenware/{id}", c.Kitchenware.DeleteProduct).Methods(http.MethodDelete)

	admin.HandleFunc("/settings", c.Settings.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", c.Settings.UpdateSettings).Methods(http.MethodPut)
}

// NewHandler wraps the router with panic recovery, CORS and request logging.
func NewHandler(router *mux.Router, allowedOrigins []string, logger *zap.Logger) http.Handler {
	recovered := handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(logger)),
	)(router)

	withCORS := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		handlers.AllowCredentials(),
	)(recovered)

	return middleware.RequestLogger(logger)(withCORS)
}
