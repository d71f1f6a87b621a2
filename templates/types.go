package templates

// CatalogRow is one price-list line rendered in the catalog table.
type CatalogRow struct {
	Model          string
	Description    string
	PriceFormatted string
}

// CartRow is one cart line rendered in the cart editor.
type CartRow struct {
	Model               string
	Description         string
	Quantity            int
	UnitFormatted       string
	DiscountedFormatted string
	TotalFormatted      string
}

// PreparerOption is one entry of the preparer dropdown.
type PreparerOption struct {
	ID       string
	Name     string
	Selected bool
}

// MetaForm carries the quote header form state.
type MetaForm struct {
	Company         string
	Contact         string
	Project         string
	DiscountPercent string
	Preparers       []PreparerOption
	ValidUntil      string
}

// CartView bundles everything the cart fragment needs.
type CartView struct {
	Rows                []CartRow
	GrandTotalFormatted string
	TextPreview         string
}

// QuotePageData is the full page model.
type QuotePageData struct {
	Query       string
	Catalog     []CatalogRow
	CatalogSize int
	Cart        CartView
	Meta        MetaForm
}
