package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/collections"
	"quotecreation/services"
	"quotecreation/templates"
)

// HandleQuoteMeta saves the quote header fields into the session.
// Route: POST /quote/meta
func HandleQuoteMeta(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form geçersiz")
		}

		discount, err := strconv.ParseFloat(e.Request.FormValue("discount"), 64)
		if err != nil || discount < 0 || discount > 100 {
			return ErrorToast(e, http.StatusBadRequest, "İskonto 0 ile 100 arasında olmalı")
		}

		var preparer services.Preparer
		if id := e.Request.FormValue("preparer"); id != "" {
			p, err := collections.FindPreparer(app, id)
			if err != nil {
				return ErrorToast(e, http.StatusBadRequest, "Hazırlayan kişi bulunamadı")
			}
			preparer = *p
		}

		sess := store.Get(e)
		var form templates.MetaForm
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			meta.Company = e.Request.FormValue("company")
			meta.Contact = e.Request.FormValue("contact")
			meta.Project = e.Request.FormValue("project")
			meta.DiscountPercent = discount
			meta.Preparer = preparer
			if meta.Date.IsZero() {
				meta.Date = time.Now()
			}
			form = buildMetaForm(app, *meta)
		})

		SetToast(e, "success", "Teklif bilgileri kaydedildi")

		// The discount changed, so the cart totals shown on screen are stale.
		// HTMX re-fetches the page on HX-Refresh.
		e.Response.Header().Set("HX-Refresh", "true")
		return templates.MetaPanel(form).Render(e.Request.Context(), e.Response)
	}
}
