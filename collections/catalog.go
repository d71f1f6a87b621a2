package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// ReplaceCatalog swaps the whole catalog for the given entries inside a
// transaction. On any error the previous catalog survives untouched; the
// catalog is never merged.
func ReplaceCatalog(app *pocketbase.PocketBase, entries []services.CatalogEntry) error {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return fmt.Errorf("catalog_items collection not found: %w", err)
	}

	return app.RunInTransaction(func(txApp core.App) error {
		existing, err := txApp.FindAllRecords(col)
		if err != nil {
			return fmt.Errorf("list existing catalog: %w", err)
		}
		for _, rec := range existing {
			if err := txApp.Delete(rec); err != nil {
				return fmt.Errorf("clear catalog: %w", err)
			}
		}

		for i, e := range entries {
			rec := core.NewRecord(col)
			rec.Set("model", e.Model)
			rec.Set("description", e.Description)
			rec.Set("list_price", e.ListPrice)
			rec.Set("sort_order", i+1)
			if err := txApp.Save(rec); err != nil {
				return fmt.Errorf("save catalog entry %q: %w", e.Model, err)
			}
		}
		return nil
	})
}

// SearchCatalog returns catalog entries whose model or description contains
// the query, case-insensitively, preserving price-list order. An empty query
// returns the full catalog.
func SearchCatalog(app *pocketbase.PocketBase, query string) ([]services.CatalogEntry, error) {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return nil, fmt.Errorf("catalog_items collection not found: %w", err)
	}

	var records []*core.Record
	if query == "" {
		records, err = app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0)
	} else {
		records, err = app.FindRecordsByFilter(col,
			"model ~ {:q} || description ~ {:q}", "sort_order", 0, 0,
			map[string]any{"q": query},
		)
	}
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}

	entries := make([]services.CatalogEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, services.CatalogEntry{
			Model:       rec.GetString("model"),
			Description: rec.GetString("description"),
			ListPrice:   rec.GetFloat("list_price"),
		})
	}
	return entries, nil
}

// FindCatalogEntry resolves a single catalog entry by model.
func FindCatalogEntry(app *pocketbase.PocketBase, model string) (*services.CatalogEntry, error) {
	records, err := app.FindRecordsByFilter("catalog_items",
		"model = {:model}", "", 1, 0,
		map[string]any{"model": model},
	)
	if err != nil || len(records) == 0 {
		return nil, fmt.Errorf("model %q not in catalog", model)
	}
	rec := records[0]
	return &services.CatalogEntry{
		Model:       rec.GetString("model"),
		Description: rec.GetString("description"),
		ListPrice:   rec.GetFloat("list_price"),
	}, nil
}

// CatalogSize returns the number of catalog entries.
func CatalogSize(app *pocketbase.PocketBase) (int, error) {
	col, err := app.FindCollectionByNameOrId("catalog_items")
	if err != nil {
		return 0, fmt.Errorf("catalog_items collection not found: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return 0, fmt.Errorf("list catalog: %w", err)
	}
	return len(records), nil
}

// ListPreparers returns the fixed preparer registry in seed order.
func ListPreparers(app *pocketbase.PocketBase) ([]services.Preparer, error) {
	col, err := app.FindCollectionByNameOrId("preparers")
	if err != nil {
		return nil, fmt.Errorf("preparers collection not found: %w", err)
	}
	records, err := app.FindRecordsByFilter(col, "id != ''", "sort_order", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query preparers: %w", err)
	}

	preparers := make([]services.Preparer, 0, len(records))
	for _, rec := range records {
		preparers = append(preparers, services.Preparer{
			ID:    rec.Id,
			Name:  rec.GetString("name"),
			Email: rec.GetString("email"),
			Phone: rec.GetString("phone"),
		})
	}
	return preparers, nil
}

// FindPreparer resolves a preparer by record id.
func FindPreparer(app *pocketbase.PocketBase, id string) (*services.Preparer, error) {
	rec, err := app.FindRecordById("preparers", id)
	if err != nil {
		return nil, fmt.Errorf("preparer %q not found: %w", id, err)
	}
	return &services.Preparer{
		ID:    rec.Id,
		Name:  rec.GetString("name"),
		Email: rec.GetString("email"),
		Phone: rec.GetString("phone"),
	}, nil
}
