package middleware

import (
	"net/http"
	"time"

	"MedSyncAI/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "medsync_sid"
	TokenCookie   = "medsync_token"

	browserKey = "browser"
)

// CookieOptions are shared by every cookie the app sets.
type CookieOptions struct {
	Secure   bool
	TokenTTL time.Duration
}

// BrowserSession attaches the caller's browsing session to the request,
// creating one (and its cookie) on first contact.
func BrowserSession(registry *session.Registry, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, _ := c.Cookie(SessionCookie)
		token, _ := c.Cookie(TokenCookie)

		bc, created := registry.Open(sid, token)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, bc.ID, 0, "/", "", opts.Secure, true)
		}
		c.Set(browserKey, bc)
		c.Next()
	}
}

// Browser returns the browsing session set by BrowserSession.
func Browser(c *gin.Context) *session.Context {
	v, ok := c.Get(browserKey)
	if !ok {
		return nil
	}
	return v.(*session.Context)
}

// PersistToken mirrors the store's token into the token cookie so a reload
// can restore it; an empty token clears the cookie.
func PersistToken(c *gin.Context, token string, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	if token == "" {
		c.SetCookie(TokenCookie, "", -1, "/", "", opts.Secure, true)
		return
	}
	c.SetCookie(TokenCookie, token, int(opts.TokenTTL.Seconds()), "/", "", opts.Secure, true)
}
