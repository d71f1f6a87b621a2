package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
	"quotecreation/templates"
)

// HandleQuotePage renders the single-page quote builder.
// Route: GET /
func HandleQuotePage(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := store.Get(e)

		var data templates.QuotePageData
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			data.Cart = buildCartView(cart, *meta)
			data.Meta = buildMetaForm(app, *meta)
		})
		data.Catalog, data.CatalogSize = buildCatalogPanel(app, "")

		return templates.QuotePage(data).Render(e.Request.Context(), e.Response)
	}
}
