package handlers

import (
	"log"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"

	"quotecreation/collections"
	"quotecreation/services"
	"quotecreation/templates"
)

// catalogRows converts catalog entries to their table representation.
func catalogRows(entries []services.CatalogEntry) []templates.CatalogRow {
	rows := make([]templates.CatalogRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, templates.CatalogRow{
			Model:          entry.Model,
			Description:    entry.Description,
			PriceFormatted: services.FormatEURDec(entry.ListPrice, 2),
		})
	}
	return rows
}

// buildCatalogPanel queries the catalog and assembles the panel fragment data.
func buildCatalogPanel(app *pocketbase.PocketBase, query string) ([]templates.CatalogRow, int) {
	entries, err := collections.SearchCatalog(app, query)
	if err != nil {
		log.Printf("catalog: search failed: %v", err)
	}
	size, err := collections.CatalogSize(app)
	if err != nil {
		log.Printf("catalog: size query failed: %v", err)
	}
	return catalogRows(entries), size
}

// buildCartView prices the cart under the session discount and prepares the
// cart fragment, including the copy-paste text preview.
func buildCartView(cart *services.Cart, meta services.QuoteMeta) templates.CartView {
	totals := cart.Totals(meta.DiscountPercent)

	rows := make([]templates.CartRow, 0, len(totals.Lines))
	for _, l := range totals.Lines {
		rows = append(rows, templates.CartRow{
			Model:               l.Model,
			Description:         l.Description,
			Quantity:            l.Quantity,
			UnitFormatted:       services.FormatEURDec(l.ListPrice, 2),
			DiscountedFormatted: services.FormatEURDec(l.UnitPrice, 2),
			TotalFormatted:      services.FormatEURDec(l.LineTotal, 2),
		})
	}

	view := templates.CartView{
		Rows:                rows,
		GrandTotalFormatted: services.FormatEURDec(totals.GrandTotal, 2),
	}
	if cart.Len() > 0 {
		view.TextPreview = services.GenerateText(services.BuildQuoteData(cart, meta))
	}
	return view
}

// buildMetaForm prepares the quote header form from the session meta and the
// preparer registry.
func buildMetaForm(app *pocketbase.PocketBase, meta services.QuoteMeta) templates.MetaForm {
	preparers, err := collections.ListPreparers(app)
	if err != nil {
		log.Printf("meta: preparer query failed: %v", err)
	}

	options := make([]templates.PreparerOption, 0, len(preparers))
	for _, p := range preparers {
		options = append(options, templates.PreparerOption{
			ID:       p.ID,
			Name:     p.Name,
			Selected: p.ID == meta.Preparer.ID,
		})
	}

	if meta.Date.IsZero() {
		meta.Date = time.Now()
	}

	return templates.MetaForm{
		Company:         meta.Company,
		Contact:         meta.Contact,
		Project:         meta.Project,
		DiscountPercent: strconv.FormatFloat(meta.DiscountPercent, 'f', -1, 64),
		Preparers:       options,
		ValidUntil:      meta.ValidUntil().Format("02.01.2006"),
	}
}
