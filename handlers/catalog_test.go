package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quotecreation/collections"
	"quotecreation/services"
	"quotecreation/testhelpers"
)

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/catalog/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestHandleCatalogUpload_ReplacesCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.ReplaceCatalog(app, []services.CatalogEntry{
		{Model: "OLD-1", Description: "old", ListPrice: 1},
	}); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	csv := "KOD,AÇIKLAMA,LİSTE FİYATI\nKSH-0800,Solar boyler,\"2.215,00\"\nKBS-1000,Boyler,\"1.612,00\"\n"

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, uploadRequest(t, "list.csv", csv), rec)

	if err := HandleCatalogUpload(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	entries, err := collections.SearchCatalog(app, "")
	if err != nil {
		t.Fatalf("SearchCatalog() error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("catalog size = %d, want 2", len(entries))
	}
	for _, entry := range entries {
		if entry.Model == "OLD-1" {
			t.Error("old catalog entry survived the upload")
		}
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "KSH-0800", "2 ürün yüklü")
}

func TestHandleCatalogUpload_SchemaErrorKeepsCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.ReplaceCatalog(app, []services.CatalogEntry{
		{Model: "KEEP-1", Description: "keep", ListPrice: 1},
	}); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, uploadRequest(t, "bad.csv", "FOO,BAR\n1,2\n"), rec)

	HandleCatalogUpload(app)(e)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none on error toast")
	}

	entries, err := collections.SearchCatalog(app, "")
	if err != nil {
		t.Fatalf("SearchCatalog() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Model != "KEEP-1" {
		t.Errorf("catalog was modified by a failed upload: %+v", entries)
	}
}

func TestHandleCatalogUpload_ReportsSkippedRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	csv := "MODEL,DESCRIPTION,PRICE\nGOOD-1,ok,100\n,missing model,200\nGOOD-2,ok,fiyat yok\n"
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, uploadRequest(t, "list.csv", csv), rec)

	if err := HandleCatalogUpload(app)(e); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "1 satır içe aktarıldı", "2 satır atlandı")
}

func TestHandleCatalogUpload_MissingFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/catalog/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	HandleCatalogUpload(app)(newTestRequestEvent(app, req, rec))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCatalogSearch(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.ReplaceCatalog(app, []services.CatalogEntry{
		{Model: "KSH-0800", Description: "Solar boyler", ListPrice: 2215},
		{Model: "POMPA-1", Description: "Sirkülasyon pompası", ListPrice: 90},
	}); err != nil {
		t.Fatalf("ReplaceCatalog() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/catalog?q=boyler", nil)
	rec := httptest.NewRecorder()

	if err := HandleCatalogSearch(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "KSH-0800")
	if strings.Contains(body, "POMPA-1") {
		t.Error("search result contains a non-matching model")
	}
}
