package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rickfeng0804-dot/NoodleGenius/internal/parser"
	"github.com/rickfeng0804-dot/NoodleGenius/internal/service"
)

const maxImageBytes = 10 << 20 // 10 MB

type ImportMenuSheetRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// getMenuHandler godoc
//
//	@Summary		Get the menu
//	@Description	Returns the current menu snapshot, categories in order
//	@Tags			menu
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		500	{object}	map[string]string
//	@Router			/menu [get]
func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	menu, err := app.catalogService.Menu(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

// importMenuCSVHandler godoc
//
//	@Summary		Import menu from CSV
//	@Description	Replaces the menu with the parsed CSV body. Malformed rows are skipped; the import fails only when no valid rows remain.
//	@Tags			menu
//	@Accept			plain
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/menu/import/csv [post]
func (app *application) importMenuCSVHandler(w http.ResponseWriter, r *http.Request) {
	imported, err := app.catalogService.ImportCSV(r.Context(), r.Body)
	if err != nil {
		if errors.Is(err, parser.ErrNoValidRows) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"imported_items": imported,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// exportMenuCSVHandler godoc
//
//	@Summary		Export menu as CSV
//	@Description	Streams the menu in the same column order the importer reads
//	@Tags			menu
//	@Produce		plain
//	@Success		200	{string}	string
//	@Failure		500	{object}	map[string]string
//	@Router			/menu/export/csv [get]
func (app *application) exportMenuCSVHandler(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("menu_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := app.catalogService.ExportCSV(r.Context(), w); err != nil {
		app.logger.Errorw("failed to export menu CSV", "error", err)
	}
}

// importMenuSheetHandler godoc
//
//	@Summary		Import menu from Google Sheets
//	@Description	Replaces the menu with rows read from the configured spreadsheet
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImportMenuSheetRequest	true	"Sheet import request"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		400		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Router			/menu/import/sheet [post]
func (app *application) importMenuSheetHandler(w http.ResponseWriter, r *http.Request) {
	var req ImportMenuSheetRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	imported, err := app.catalogService.ImportFromSheet(r.Context(), req.SpreadsheetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSheetsUnavailable):
			app.serviceUnavailableResponse(w, r, err)
		case errors.Is(err, parser.ErrNoValidRows):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"imported_items": imported,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recognizeMenuHandler godoc
//
//	@Summary		Generate menu from an image
//	@Description	Runs menu image recognition over the uploaded photo and replaces the menu with the result. No partial menu is applied on failure.
//	@Tags			menu
//	@Accept			octet-stream
//	@Produce		json
//	@Success		201	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/menu/recognize [post]
func (app *application) recognizeMenuHandler(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImageBytes))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	imported, err := app.catalogService.RecognizeImage(r.Context(), image)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecognizerUnavailable):
			app.serviceUnavailableResponse(w, r, err)
		case errors.Is(err, service.ErrRecognitionFailed):
			app.badRequestResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	response := map[string]interface{}{
		"imported_items": imported,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
