package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"quotecreation/services"
)

const sessionCookieName = "quote_session"

// sessionMaxIdle is how long an untouched quote session survives before the
// store drops it.
const sessionMaxIdle = 12 * time.Hour

// QuoteSession holds the per-browser working state of a quote: the cart and
// the header fields. Nothing here is persisted; the catalog and preparer
// registry live in the database, the quote in progress lives in memory.
type QuoteSession struct {
	mu       sync.Mutex
	Cart     services.Cart
	Meta     services.QuoteMeta
	lastSeen time.Time
}

// WithLock runs fn while holding the session lock. All handler access to the
// cart and meta goes through this so concurrent HTMX requests from the same
// browser cannot race.
func (s *QuoteSession) WithLock(fn func(cart *services.Cart, meta *services.QuoteMeta)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.Cart, &s.Meta)
}

// SessionStore maps session cookie values to QuoteSessions.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*QuoteSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*QuoteSession)}
}

// Get returns the session for the request, creating one (and setting the
// cookie) when the request carries no valid session cookie.
func (st *SessionStore) Get(e *core.RequestEvent) *QuoteSession {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := time.Now()
	st.sweepLocked(now)

	if cookie, err := e.Request.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if sess, ok := st.sessions[cookie.Value]; ok {
			sess.lastSeen = now
			return sess
		}
	}

	id := newSessionID()
	sess := &QuoteSession{lastSeen: now}
	sess.Meta.DiscountPercent = services.DefaultDiscountPercent
	st.sessions[id] = sess

	http.SetCookie(e.Response, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess
}

func (st *SessionStore) sweepLocked(now time.Time) {
	for id, sess := range st.sessions {
		if now.Sub(sess.lastSeen) > sessionMaxIdle {
			delete(st.sessions, id)
		}
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// A session id must never come from a partially filled buffer.
		panic(fmt.Sprintf("session id entropy unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}
