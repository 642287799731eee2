package httpapi

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authapp "github.com/stonique/storefront/internal/auth/app"
	cartapp "github.com/stonique/storefront/internal/cart/app"
	cartkv "github.com/stonique/storefront/internal/cart/infra/kv"
	kvstore "github.com/stonique/storefront/pkg/kv"
)

const (
	sessionCookie = "stonique_session"
	sessionMaxAge = 30 * 24 * 60 * 60

	sessionContextKey = "storefront.session"
)

// Session is one browser session: its own cart, selection set and auth
// state, all namespaced in the shared key-value store.
type Session struct {
	ID        string
	Cart      *cartapp.Service
	Selection *cartapp.Selection
	Auth      *authapp.Service
}

// Sessions owns the live sessions and lazily recreates them from the
// key-value store after a restart, keyed by the session cookie.
type Sessions struct {
	mu   sync.Mutex
	byID map[string]*Session
	kv   kvstore.Store
}

func NewSessions(store kvstore.Store) *Sessions {
	return &Sessions{
		byID: make(map[string]*Session),
		kv:   store,
	}
}

func (s *Sessions) getOrCreate(c *gin.Context, id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.byID[id]; ok {
		return sess
	}

	scoped := kvstore.NewPrefixed(s.kv, "session:"+id+":")
	cart := cartapp.NewService(cartkv.NewSnapshotRepo(scoped, ""))
	cart.Rehydrate(c.Request.Context())

	sess := &Session{
		ID:        id,
		Cart:      cart,
		Selection: cartapp.NewSelection(),
		Auth:      authapp.NewService(scoped),
	}
	s.byID[id] = sess
	return sess
}

// Middleware attaches the request's session, issuing the cookie when the
// browser does not have one yet.
func (s *Sessions) Middleware(c *gin.Context) {
	id, err := c.Cookie(sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
	}

	c.Set(sessionContextKey, s.getOrCreate(c, id))
	c.Next()
}

func currentSession(c *gin.Context) *Session {
	return c.MustGet(sessionContextKey).(*Session)
}

// requireAuth gates the private routes the same way the storefront's
// protected pages do: unauthenticated sessions are bounced.
func requireAuth(c *gin.Context) {
	sess := currentSession(c)
	if _, ok := sess.Auth.CurrentUser(c.Request.Context()); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authentication required",
			"code":  "UNAUTHENTICATED",
		})
		return
	}
	c.Next()
}
