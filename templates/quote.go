// Package templates renders the HTMX UI. Components are built with
// templ.ComponentFunc so fragments compose the same way on full page loads
// and on partial swaps.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// UploadReport summarizes a price-list upload for the catalog panel.
type UploadReport struct {
	Imported int
	Skipped  []SkippedRowView
}

// SkippedRowView is one dropped price-list row with its reason.
type SkippedRowView struct {
	Row    int
	Reason string
}

// QuotePage renders the full application shell.
func QuotePage(data QuotePageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<!DOCTYPE html>
<html lang="tr" data-theme="corporate">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Termoline Teklif</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link href="https://cdn.jsdelivr.net/npm/daisyui@4.12.10/dist/full.min.css" rel="stylesheet" type="text/css">
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-base-200">
<div class="navbar bg-base-100 shadow px-6">
<span class="text-xl font-bold">Termoline Teklif Hazırlama</span>
</div>
<div class="grid grid-cols-1 lg:grid-cols-3 gap-6 p-6">
<div class="lg:col-span-1">`)
		if err := MetaPanel(data.Meta).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprint(w, `</div>
<div class="lg:col-span-2 space-y-6">`)
		if err := CatalogPanel(data.Catalog, data.Query, data.CatalogSize, nil).Render(ctx, w); err != nil {
			return err
		}
		if err := CartPanel(data.Cart).Render(ctx, w); err != nil {
			return err
		}
		fmt.Fprint(w, `</div>
</div>
<div id="toast-container" class="toast toast-end z-50"></div>
<script>
function showToast(message, type) {
  const container = document.getElementById('toast-container');
  const alert = document.createElement('div');
  alert.className = 'alert alert-' + (type === 'error' ? 'error' : 'success');
  alert.textContent = message;
  container.appendChild(alert);
  setTimeout(() => alert.remove(), 5000);
}
document.body.addEventListener('showToast', function(evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function() {
  const match = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!match) return;
  try {
    const data = JSON.parse(decodeURIComponent(match[1]));
    showToast(data.message, data.type);
  } catch (e) {}
  document.cookie = 'flash_toast=; Path=/; Max-Age=0';
})();
</script>
</body>
</html>`)
		return nil
	})
}

// MetaPanel renders the quote header form with the export buttons.
func MetaPanel(m MetaForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<div id="meta-panel" class="card bg-base-100 shadow">
<div class="card-body">
<h2 class="card-title">Teklif Bilgileri</h2>
<form hx-post="/quote/meta" hx-target="#meta-panel" hx-swap="outerHTML" class="space-y-2">`)
		metaInput(w, "company", "Firma", m.Company)
		metaInput(w, "contact", "İlgili Kişi", m.Contact)
		metaInput(w, "project", "Proje", m.Project)
		fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">İskonto (%%)</span>
<input type="number" name="discount" value="%s" min="0" max="100" step="0.1" class="input input-bordered input-sm">
</label>
<label class="form-control">
<span class="label-text">Teklifi Hazırlayan</span>
<select name="preparer" class="select select-bordered select-sm">
<option value="">Seçiniz</option>`, esc(m.DiscountPercent))
		for _, p := range m.Preparers {
			selected := ""
			if p.Selected {
				selected = " selected"
			}
			fmt.Fprintf(w, `<option value="%s"%s>%s</option>`, esc(p.ID), selected, esc(p.Name))
		}
		fmt.Fprintf(w, `</select>
</label>
<button type="submit" class="btn btn-primary btn-sm w-full">Kaydet</button>
</form>
<div class="text-sm opacity-70 mt-2">Geçerlilik: %s</div>
<div class="divider">Dışa Aktar</div>
<div class="grid grid-cols-2 gap-2">
<a href="/quote/export/pdf" class="btn btn-outline btn-sm">PDF</a>
<a href="/quote/export/png" class="btn btn-outline btn-sm">PNG</a>
<a href="/quote/export/xlsx" class="btn btn-outline btn-sm">Excel</a>
<a href="/quote/export/text" class="btn btn-outline btn-sm">Metin</a>
</div>
<div class="divider">Fiyat Listesi</div>
<form hx-post="/catalog/upload" hx-target="#catalog-panel" hx-swap="outerHTML" enctype="multipart/form-data" class="space-y-2">
<input type="file" name="file" accept=".xlsx,.csv" class="file-input file-input-bordered file-input-sm w-full">
<button type="submit" class="btn btn-secondary btn-sm w-full">Fiyat Listesi Yükle</button>
</form>
</div>
</div>`, esc(m.ValidUntil))
		return nil
	})
}

func metaInput(w io.Writer, name, label, value string) {
	fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">%s</span>
<input type="text" name="%s" value="%s" class="input input-bordered input-sm">
</label>`, esc(label), name, esc(value))
}

// CatalogPanel renders the searchable catalog table, optionally preceded by
// an upload report.
func CatalogPanel(rows []CatalogRow, query string, catalogSize int, report *UploadReport) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<div id="catalog-panel" class="card bg-base-100 shadow">
<div class="card-body">
<h2 class="card-title">Ürün Kataloğu</h2>`)
		if report != nil {
			renderUploadReport(w, report)
		}
		fmt.Fprintf(w, `<input type="search" name="q" value="%s" placeholder="Model veya açıklama ara"
 class="input input-bordered input-sm w-full"
 hx-get="/catalog" hx-trigger="input changed delay:300ms, search" hx-target="#catalog-panel" hx-swap="outerHTML">
<div class="overflow-x-auto max-h-96">
<table class="table table-sm table-zebra">
<thead><tr><th>Model</th><th>Açıklama</th><th class="text-right">Liste Fiyatı (EUR)</th><th></th></tr></thead>
<tbody>`, esc(query))
		for _, row := range rows {
			fmt.Fprintf(w, `<tr>
<td class="font-mono">%s</td>
<td>%s</td>
<td class="text-right">%s</td>
<td><form hx-post="/cart/items" hx-target="#cart-panel" hx-swap="outerHTML" class="flex gap-1">
<input type="hidden" name="model" value="%s">
<input type="number" name="qty" value="1" min="1" class="input input-bordered input-xs w-16">
<button type="submit" class="btn btn-primary btn-xs">Ekle</button>
</form></td>
</tr>`, esc(row.Model), esc(row.Description), esc(row.PriceFormatted), esc(row.Model))
		}
		if len(rows) == 0 {
			fmt.Fprint(w, `<tr><td colspan="4" class="text-center opacity-60">Sonuç bulunamadı</td></tr>`)
		}
		fmt.Fprintf(w, `</tbody>
</table>
</div>
<div class="text-xs opacity-60">%d ürün yüklü</div>
</div>
</div>`, catalogSize)
		return nil
	})
}

func renderUploadReport(w io.Writer, report *UploadReport) {
	fmt.Fprintf(w, `<div class="alert alert-info text-sm"><span>%d satır içe aktarıldı`, report.Imported)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, `, %d satır atlandı:<ul class="list-disc list-inside">`, len(report.Skipped))
		for _, s := range report.Skipped {
			fmt.Fprintf(w, `<li>Satır %d: %s</li>`, s.Row, esc(s.Reason))
		}
		fmt.Fprint(w, `</ul>`)
	}
	fmt.Fprint(w, `</span></div>`)
}

// CartPanel renders the editable cart table with totals and the text preview.
func CartPanel(view CartView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fmt.Fprint(w, `<div id="cart-panel" class="card bg-base-100 shadow">
<div class="card-body">
<h2 class="card-title">Sepet</h2>`)
		if len(view.Rows) == 0 {
			fmt.Fprint(w, `<p class="opacity-60">Sepet boş. Katalogdan ürün ekleyin.</p>
</div>
</div>`)
			return nil
		}
		fmt.Fprint(w, `<form hx-post="/cart/apply" hx-target="#cart-panel" hx-swap="outerHTML">
<div class="overflow-x-auto">
<table class="table table-sm">
<thead><tr><th>Model</th><th>Açıklama</th><th>Adet</th><th class="text-right">Birim (EUR)</th><th class="text-right">İskontolu (EUR)</th><th class="text-right">Toplam (EUR)</th><th>Sil</th></tr></thead>
<tbody>`)
		for _, row := range view.Rows {
			fmt.Fprintf(w, `<tr>
<td class="font-mono">%s<input type="hidden" name="model" value="%s"></td>
<td>%s</td>
<td><input type="number" name="qty_%s" value="%s" min="1" class="input input-bordered input-xs w-16"></td>
<td class="text-right">%s</td>
<td class="text-right">%s</td>
<td class="text-right">%s</td>
<td><input type="checkbox" name="del_%s" class="checkbox checkbox-xs checkbox-error"></td>
</tr>`, esc(row.Model), esc(row.Model), esc(row.Description), esc(row.Model),
				strconv.Itoa(row.Quantity), esc(row.UnitFormatted),
				esc(row.DiscountedFormatted), esc(row.TotalFormatted), esc(row.Model))
		}
		fmt.Fprintf(w, `</tbody>
</table>
</div>
<div class="flex justify-between items-center mt-2">
<span class="font-bold">Genel Toplam: %s EUR + KDV</span>
<span class="space-x-2">
<button type="submit" class="btn btn-primary btn-sm">Değişiklikleri Uygula</button>
<button type="button" class="btn btn-ghost btn-sm" hx-post="/cart/reset" hx-target="#cart-panel" hx-swap="outerHTML" hx-confirm="Sepet temizlensin mi?">Sıfırla</button>
</span>
</div>
</form>
<div class="divider">Metin Önizleme</div>
<pre class="bg-base-200 p-3 rounded text-xs overflow-x-auto">%s</pre>
</div>
</div>`, esc(view.GrandTotalFormatted), esc(view.TextPreview))
		return nil
	})
}
