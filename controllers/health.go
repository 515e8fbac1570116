package controllers

import "net/http"

const serviceName = "Huile de Sfax API"

// Root serves the API banner.
func Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": serviceName + " - Welcome"})
}

// Health is the liveness probe. It does not touch the store.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": serviceName})
}
