package main

import (
	"errors"
	"net/http"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/domain"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/service"
)

type UpdateSettingsRequest struct {
	StoreName         string `json:"store_name" validate:"required"`
	OwnerEmail        string `json:"owner_email" validate:"omitempty,email"`
	GoogleSheetURL    string `json:"google_sheet_url" validate:"omitempty,url"`
	GoogleScriptURL   string `json:"google_script_url" validate:"omitempty,url"`
	LineToken         string `json:"line_token"`
	EnableEmailNotify bool   `json:"enable_email_notify"`
	EnableSheetSync   bool   `json:"enable_sheet_sync"`
	EnableLineNotify  bool   `json:"enable_line_notify"`
	Username          string `json:"username"`
	Password          string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// getSettingsHandler godoc
//
//	@Summary		Get store settings
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	domain.StoreSettings
//	@Failure		500	{object}	map[string]string
//	@Router			/settings [get]
func (app *application) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, err := app.settingsService.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, settings); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSettingsHandler godoc
//
//	@Summary		Save store settings
//	@Description	Replaces the whole settings object; the only way settings change
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateSettingsRequest	true	"Settings"
//	@Success		200		{object}	domain.StoreSettings
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/settings [put]
func (app *application) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	settings := domain.StoreSettings{
		StoreName:         req.StoreName,
		OwnerEmail:        req.OwnerEmail,
		GoogleSheetURL:    req.GoogleSheetURL,
		GoogleScriptURL:   req.GoogleScriptURL,
		LineToken:         req.LineToken,
		EnableEmailNotify: req.EnableEmailNotify,
		EnableSheetSync:   req.EnableSheetSync,
		EnableLineNotify:  req.EnableLineNotify,
		Username:          req.Username,
		Password:          req.Password,
	}

	if err := app.settingsService.Save(r.Context(), settings); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	saved, err := app.settingsService.Get(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, saved); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Admin login
//	@Description	Plain credential check gating the admin panel
//	@Tags			settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	map[string]interface{}
//	@Failure		401		{object}	map[string]string
//	@Router			/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.settingsService.Authenticate(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			app.unauthorizedResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"success": true,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// resetHandler godoc
//
//	@Summary		Reset the system
//	@Description	Wipes menu, carts, orders and audit trail. Settings are kept.
//	@Tags			settings
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/reset [post]
func (app *application) resetHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.storage.Reset(r.Context()); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("system reset")

	response := map[string]interface{}{
		"success": true,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
