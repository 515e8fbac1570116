package controllers

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"huile-de-sfax/models"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

var settingsFilter = bson.M{"id": models.SiteSettingsID}

// SettingsController serves the site settings singleton
type SettingsController struct {
	Collection store.Collection
	validator  *utils.Validator
	logger     *zap.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(db store.Database, validator *utils.Validator, logger *zap.Logger) *SettingsController {
	return &SettingsController{
		Collection: db.Collection(store.SiteSettings),
		validator:  validator,
		logger:     logger,
	}
}

// GetSettings returns the stored settings, or the defaults if none were saved yet.
func (sc *SettingsController) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext(r)
	defer cancel()

	var settings models.SiteSettings
	err := sc.Collection.FindOne(ctx, settingsFilter, &settings)
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusOK, models.DefaultSiteSettings())
		return
	}
	if err != nil {
		internalError(w, sc.logger, "load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateSettings saves the supplied fields (Admin only)
func (sc *SettingsController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var input models.SiteSettingsUpdate
	if !decodeAndValidate(w, r, sc.validator, &input) {
		return
	}
	changes, err := input.Changes()
	if errors.Is(err, models.ErrNoFields) {
		writeDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}

	ctx, cancel := storeContext(r)
	defer cancel()

	// The first save starts from the defaults so unsent fields never go blank.
	if err := sc.Collection.UpsertOne(ctx, settingsFilter, changes, models.DefaultSiteSettings()); err != nil {
		internalError(w, sc.logger, "update settings", err)
		return
	}

	var settings models.SiteSettings
	if err := sc.Collection.FindOne(ctx, settingsFilter, &settings); err != nil {
		internalError(w, sc.logger, "reload settings", err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}
