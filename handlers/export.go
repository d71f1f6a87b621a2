package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// exportFormats maps the URL format segment to a generator and content type.
var exportFormats = map[string]struct {
	contentType string
	ext         string
	needsFonts  bool
	generate    func(data services.QuoteData, fonts *services.FontSet) ([]byte, error)
}{
	"pdf": {
		contentType: "application/pdf",
		ext:         "pdf",
		needsFonts:  true,
		generate:    services.GeneratePDF,
	},
	"png": {
		contentType: "image/png",
		ext:         "png",
		needsFonts:  true,
		generate:    services.GeneratePNG,
	},
	"xlsx": {
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		ext:         "xlsx",
		generate: func(data services.QuoteData, _ *services.FontSet) ([]byte, error) {
			return services.GenerateExcel(data)
		},
	},
	"text": {
		contentType: "text/plain; charset=utf-8",
		ext:         "txt",
		generate: func(data services.QuoteData, _ *services.FontSet) ([]byte, error) {
			return []byte(services.GenerateText(data)), nil
		},
	},
}

// HandleQuoteExport generates and downloads the quote in the requested format.
// Route: GET /quote/export/{format}
func HandleQuoteExport(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format, ok := exportFormats[e.Request.PathValue("format")]
		if !ok {
			return e.String(http.StatusNotFound, "Bilinmeyen format")
		}

		sess := store.Get(e)
		var data services.QuoteData
		var empty bool
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			if cart.Len() == 0 {
				empty = true
				return
			}
			m := *meta
			m.Date = time.Now()
			data = services.BuildQuoteData(cart, m)
		})
		if empty {
			return ErrorToast(e, http.StatusBadRequest, "Sepet boş, önce ürün ekleyin")
		}
		if data.Meta.Preparer.ID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Lütfen teklifi hazırlayan kişiyi seçin")
		}

		var fonts *services.FontSet
		if format.needsFonts {
			var err error
			fonts, err = services.LoadFonts(services.FontDir)
			if err != nil {
				var missing *services.AssetMissingError
				if errors.As(err, &missing) {
					log.Printf("export: font asset missing: %v", err)
					return ErrorToast(e, http.StatusInternalServerError,
						"Yazı tipi dosyası eksik: "+missing.Path)
				}
				log.Printf("export: load fonts: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "Bir hata oluştu. Lütfen tekrar deneyin.")
			}
		}

		out, err := format.generate(data, fonts)
		if err != nil {
			log.Printf("export: generate %s: %v", format.ext, err)
			return ErrorToast(e, http.StatusInternalServerError, "Belge oluşturulamadı. Lütfen tekrar deneyin.")
		}

		filename := services.QuoteFileName(data.Meta, format.ext)
		e.Response.Header().Set("Content-Type", format.contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(out)
		return nil
	}
}
