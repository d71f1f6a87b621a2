package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/collections"
	"quotecreation/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		store := handlers.NewSessionStore()

		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quote")
		})
		se.Router.GET("/quote", handlers.HandleQuotePage(app, store))

		// ── Catalog ─────────────────────────────────────────────
		se.Router.GET("/catalog", handlers.HandleCatalogSearch(app))
		se.Router.POST("/catalog/upload", handlers.HandleCatalogUpload(app))

		// ── Cart ────────────────────────────────────────────────
		se.Router.POST("/cart/items", handlers.HandleCartAdd(app, store))
		se.Router.POST("/cart/apply", handlers.HandleCartApply(store))
		se.Router.POST("/cart/reset", handlers.HandleCartReset(store))

		// ── Quote header & exports ──────────────────────────────
		se.Router.POST("/quote/meta", handlers.HandleQuoteMeta(app, store))
		se.Router.GET("/quote/export/{format}", handlers.HandleQuoteExport(app, store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
