package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"huile-de-sfax/middleware"
	"huile-de-sfax/utils"
)

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Token         string `json:"token,omitempty"`
}

// AdminController serves the admin session endpoints and catalog initialization.
// Credentials are checked by middleware.AdminAuth before any handler here runs.
type AdminController struct {
	tokens *utils.TokenSigner
	seeder *Seeder
	logger *zap.Logger
}

// NewAdminController creates a new AdminController. tokens may be nil.
func NewAdminController(tokens *utils.TokenSigner, seeder *Seeder, logger *zap.Logger) *AdminController {
	return &AdminController{tokens: tokens, seeder: seeder, logger: logger}
}

// Login confirms the credentials and, when tokens are enabled, issues a bearer token.
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())
	response := sessionResponse{Authenticated: true, Username: username}

	if ac.tokens != nil {
		token, err := ac.tokens.GenerateJWT(username)
		if err != nil {
			internalError(w, ac.logger, "issue admin token", err)
			return
		}
		response.Token = token
	}

	ac.logger.Info("admin login", zap.String("username", username))
	writeJSON(w, http.StatusOK, response)
}

// Verify reports the authenticated admin.
func (ac *AdminController) Verify(w http.ResponseWriter, r *http.Request) {
	username, _ := middleware.UsernameFromContext(r.Context())
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Username: username})
}

// InitProducts persists the default catalogs into empty collections.
func (ac *AdminController) InitProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	if _, err := ac.seeder.SeedIfEmpty(ctx); err != nil {
		internalError(w, ac.logger, "initialize products", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "Products initialized"})
}
