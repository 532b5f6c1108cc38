package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookiePolicy holds the attributes shared by every auth cookie.
type CookiePolicy struct {
	Secure bool
	MaxAge time.Duration
}

// NewCookiePolicy derives cookie attributes from the deployment mode.
func NewCookiePolicy(secure bool, maxAge time.Duration) CookiePolicy {
	return CookiePolicy{Secure: secure, MaxAge: maxAge}
}

// sameSite is None for secure (cross-site production) deployments and
// Strict otherwise. Browsers reject SameSite=None without Secure.
func (p CookiePolicy) sameSite() http.SameSite {
	if p.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// Set writes an HttpOnly cookie carrying value.
func (p CookiePolicy) Set(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(p.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.sameSite(),
	})
}

// Clear expires the cookie. Attributes match Set so browsers drop it.
func (p CookiePolicy) Clear(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   p.Secure,
		SameSite: p.sameSite(),
	})
}

// Grant describes a successful login or registration.
type Grant struct {
	Status  int
	Message string
	Token   string
	User    any
	// TokenInBody also returns the token to web clients. Registration
	// historically did this; login does not.
	TokenInBody bool
}

// SessionResponder delivers tokens over the request's channel.
type SessionResponder struct {
	cookies    CookiePolicy
	cookieName string
}

// NewSessionResponder creates a responder that uses cookieName on the web channel.
func NewSessionResponder(cookies CookiePolicy, cookieName string) *SessionResponder {
	return &SessionResponder{cookies: cookies, cookieName: cookieName}
}

// Grant sends the token: in the body for mobile clients, as a cookie for web.
func (r *SessionResponder) Grant(c *gin.Context, g Grant) {
	status := g.Status
	if status == 0 {
		status = http.StatusOK
	}

	if IsMobileRequest(c) {
		c.JSON(status, Response{
			Message: g.Message + " (mobile)",
			Success: true,
			User:    g.User,
			Token:   g.Token,
		})
		return
	}

	r.cookies.Set(c.Writer, r.cookieName, g.Token)
	resp := Response{
		Message: g.Message,
		Success: true,
		User:    g.User,
	}
	if g.TokenInBody {
		resp.Token = g.Token
	}
	c.JSON(status, resp)
}

// Logout clears the web cookie. Mobile clients discard their token locally.
func (r *SessionResponder) Logout(c *gin.Context, message string) {
	if IsMobileRequest(c) {
		c.JSON(http.StatusOK, Response{Message: message + " (mobile)", Success: true})
		return
	}

	r.cookies.Clear(c.Writer, r.cookieName)
	c.JSON(http.StatusOK, Response{Message: message, Success: true})
}
