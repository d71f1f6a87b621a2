package handlers

import (
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/collections"
	"quotecreation/services"
	"quotecreation/templates"
)

// HandleCartAdd adds a catalog entry to the cart, accumulating the quantity
// when the model is already present.
// Route: POST /cart/items
func HandleCartAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form geçersiz")
		}

		model := e.Request.FormValue("model")
		if model == "" {
			return ErrorToast(e, http.StatusBadRequest, "Model seçilmedi")
		}

		qty, err := strconv.Atoi(e.Request.FormValue("qty"))
		if err != nil {
			qty = 1
		}

		entry, err := collections.FindCatalogEntry(app, model)
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "Ürün katalogda bulunamadı: "+model)
		}

		sess := store.Get(e)
		var view templates.CartView
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			cart.Add(entry.Model, entry.Description, entry.ListPrice, qty)
			view = buildCartView(cart, *meta)
		})

		return templates.CartPanel(view).Render(e.Request.Context(), e.Response)
	}
}

// HandleCartApply applies quantity edits and deletions from the cart form.
// Quantities below one are clamped, checked rows are removed.
// Route: POST /cart/apply
func HandleCartApply(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Form geçersiz")
		}

		var edits []services.LineEdit
		for _, model := range e.Request.Form["model"] {
			qty, err := strconv.Atoi(e.Request.FormValue("qty_" + model))
			if err != nil {
				qty = 1
			}
			edits = append(edits, services.LineEdit{
				Model:    model,
				Quantity: qty,
				Delete:   e.Request.FormValue("del_"+model) != "",
			})
		}

		sess := store.Get(e)
		var view templates.CartView
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			cart.ApplyEdits(edits)
			view = buildCartView(cart, *meta)
		})

		return templates.CartPanel(view).Render(e.Request.Context(), e.Response)
	}
}

// HandleCartReset empties the cart.
// Route: POST /cart/reset
func HandleCartReset(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := store.Get(e)
		var view templates.CartView
		sess.WithLock(func(cart *services.Cart, meta *services.QuoteMeta) {
			cart.Reset()
			view = buildCartView(cart, *meta)
		})

		SetToast(e, "success", "Sepet temizlendi")
		return templates.CartPanel(view).Render(e.Request.Context(), e.Response)
	}
}
