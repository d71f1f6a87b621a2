package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quotecreation/services"
	"quotecreation/testhelpers"
)

func TestSessionStore_CookieRoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	first := store.Get(newTestRequestEvent(app, req, rec))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "quote_session" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("expected quote_session cookie on first request")
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	second := store.Get(newTestRequestEvent(app, req2, httptest.NewRecorder()))

	if first != second {
		t.Error("expected the same session for the same cookie")
	}
}

func TestSessionStore_DefaultDiscount(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := store.Get(newTestRequestEvent(app, req, rec))

	if sess.Meta.DiscountPercent != services.DefaultDiscountPercent {
		t.Errorf("fresh session discount = %v, want %v",
			sess.Meta.DiscountPercent, services.DefaultDiscountPercent)
	}
}

func TestSessionStore_SweepsIdleSessions(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := NewSessionStore()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := store.Get(newTestRequestEvent(app, req, rec))
	sess.lastSeen = time.Now().Add(-sessionMaxIdle - time.Minute)

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "quote_session" {
			cookie = c
		}
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	fresh := store.Get(newTestRequestEvent(app, req2, httptest.NewRecorder()))

	if fresh == sess {
		t.Error("expected the idle session to be dropped")
	}
}
