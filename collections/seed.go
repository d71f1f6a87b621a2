package collections

import (
	"fmt"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

// Fallback price-list files checked at startup when no catalog exists yet.
var fallbackPriceLists = []string{"price_list.csv", "price_list.xlsx"}

// demoCatalog is the built-in last-resort dataset so the app is usable before
// any price list has been uploaded.
var demoCatalog = []services.CatalogEntry{
	{Model: "KSH-0800-V5.1", Description: "SOLAR & ISI POMPASI BOYLER - ÇİFT SERPANTİNLİ 800 LİTRE - 10 BAR", ListPrice: 2215},
	{Model: "KSH-1000-V5.1", Description: "SOLAR & ISI POMPASI BOYLER - ÇİFT SERPANTİNLİ 1000 LİTRE - 10 BAR", ListPrice: 2468},
	{Model: "KBS-B-0800-V5.1", Description: "TEK SERPANTİNLİ BOYLER 800 LİTRE - BASIC 10 BAR", ListPrice: 1494},
	{Model: "KBS-B-1000-V5.1", Description: "TEK SERPANTİNLİ BOYLER 1000 LİTRE - BASIC 10 BAR", ListPrice: 1612},
}

// defaultPreparers is the fixed registry of people allowed to issue quotes.
var defaultPreparers = []services.Preparer{
	{Name: "Serkan Demir", Email: "serkan.demir@termoline.com.tr", Phone: "+90 532 000 00 01"},
	{Name: "Elif Kaya", Email: "elif.kaya@termoline.com.tr", Phone: "+90 532 000 00 02"},
	{Name: "Murat Öztürk", Email: "murat.ozturk@termoline.com.tr", Phone: "+90 532 000 00 03"},
}

// Seed populates the preparer registry and, when no catalog exists, loads
// one following the fallback order: local price-list file first, built-in
// demo rows last. An uploaded list later replaces whatever was seeded.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedPreparers(app); err != nil {
		return err
	}
	return seedCatalog(app)
}

func seedPreparers(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("preparers")
	if err != nil {
		return fmt.Errorf("preparers collection not found: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("list preparers: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i, p := range defaultPreparers {
		rec := core.NewRecord(col)
		rec.Set("name", p.Name)
		rec.Set("email", p.Email)
		rec.Set("phone", p.Phone)
		rec.Set("sort_order", i+1)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed preparer %q: %w", p.Name, err)
		}
	}
	log.Printf("Seeded %d preparers", len(defaultPreparers))
	return nil
}

func seedCatalog(app *pocketbase.PocketBase) error {
	size, err := CatalogSize(app)
	if err != nil {
		return err
	}
	if size > 0 {
		return nil
	}

	for _, path := range fallbackPriceLists {
		entries, ok := loadLocalPriceList(path)
		if !ok {
			continue
		}
		if err := ReplaceCatalog(app, entries); err != nil {
			return fmt.Errorf("seed catalog from %s: %w", path, err)
		}
		log.Printf("Seeded catalog from %s: %d products", path, len(entries))
		return nil
	}

	if err := ReplaceCatalog(app, demoCatalog); err != nil {
		return fmt.Errorf("seed demo catalog: %w", err)
	}
	log.Printf("Demo catalog active (%d products); upload a price list to replace it", len(demoCatalog))
	return nil
}

// loadLocalPriceList tries to read and normalize a fallback price-list file.
// A broken fallback file is logged and skipped, never fatal.
func loadLocalPriceList(path string) ([]services.CatalogEntry, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	result, err := services.ParsePriceListFile(f, path)
	if err != nil {
		log.Printf("seed: could not read %s: %v", path, err)
		return nil, false
	}
	if len(result.Skipped) > 0 {
		log.Printf("seed: %s: skipped %d rows", path, len(result.Skipped))
	}
	if len(result.Entries) == 0 {
		return nil, false
	}
	return result.Entries, true
}
