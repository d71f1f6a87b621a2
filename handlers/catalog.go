package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/collections"
	"quotecreation/services"
	"quotecreation/templates"
)

// HandleCatalogSearch filters the catalog table by model or description.
// Route: GET /catalog
func HandleCatalogSearch(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query().Get("q")
		rows, size := buildCatalogPanel(app, query)
		return templates.CatalogPanel(rows, query, size, nil).Render(e.Request.Context(), e.Response)
	}
}

// HandleCatalogUpload receives an uploaded price list (.xlsx or .csv),
// normalizes it and replaces the catalog wholesale. On a schema error or a
// parse failure the previous catalog is left untouched.
// Route: POST /catalog/upload
func HandleCatalogUpload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Dosya çok büyük veya form geçersiz")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Lütfen bir dosya seçin")
		}
		defer file.Close()

		result, err := services.ParsePriceListFile(file, header.Filename)
		if err != nil {
			var schemaErr *services.SchemaError
			if errors.As(err, &schemaErr) {
				return ErrorToast(e, http.StatusBadRequest, schemaErr.Error())
			}
			log.Printf("catalog_upload: parse %s: %v", header.Filename, err)
			return ErrorToast(e, http.StatusBadRequest, "Fiyat listesi okunamadı: "+err.Error())
		}

		if len(result.Entries) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Fiyat listesinde geçerli satır bulunamadı")
		}

		if err := collections.ReplaceCatalog(app, result.Entries); err != nil {
			log.Printf("catalog_upload: replace failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Katalog güncellenemedi, önceki liste korundu")
		}

		report := &templates.UploadReport{Imported: len(result.Entries)}
		for _, s := range result.Skipped {
			report.Skipped = append(report.Skipped, templates.SkippedRowView{Row: s.Row, Reason: s.Reason})
		}

		SetToast(e, "success", fmt.Sprintf("%d ürün yüklendi", len(result.Entries)))

		rows, size := buildCatalogPanel(app, "")
		return templates.CatalogPanel(rows, "", size, report).Render(e.Request.Context(), e.Response)
	}
}
