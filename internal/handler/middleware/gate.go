package middleware

import (
	"net/http"
	"strings"

	"eiffel-bike-client/internal/domain/identity"
	"eiffel-bike-client/internal/handler/httperr"
	"eiffel-bike-client/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionGate applies the route authorization gate on navigation. The gate
// itself is pure; this middleware only translates its decision into a
// redirect or a pass-through. It never mutates session state.
type SessionGate struct {
	sessions *session.Store
}

func NewSessionGate(sessions *session.Store) *SessionGate {
	return &SessionGate{sessions: sessions}
}

// RequireRoles gates a route group on the given roles: no session redirects
// to login, a session with the wrong role redirects home.
func (g *SessionGate) RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := g.sessions.Current()
		decision := session.CanEnter(current, roles)
		if decision.Allowed {
			stashClaim(c, current)
			c.Next()
			return
		}
		if wantsJSON(c) {
			status := http.StatusUnauthorized
			if decision.Target == session.HomePath {
				status = http.StatusForbidden
			}
			c.AbortWithStatusJSON(status, httperr.Response{
				Status:   status,
				Error:    "Not allowed",
				Redirect: decision.Target,
			})
			return
		}
		c.Redirect(http.StatusSeeOther, decision.Target)
		c.Abort()
	}
}

// RequireSession gates routes that only need a logged-in user, any role.
func (g *SessionGate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if current := g.sessions.Current(); current != nil {
			stashClaim(c, current)
			c.Next()
			return
		}
		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{
				Status:   http.StatusUnauthorized,
				Error:    "Not logged in",
				Redirect: session.LoginPath,
			})
			return
		}
		c.Redirect(http.StatusSeeOther, session.LoginPath)
		c.Abort()
	}
}

// The surface is JSON-first; only a browser navigation (Accept: text/html)
// gets the redirect itself, API callers get the target in the body.
func wantsJSON(c *gin.Context) bool {
	return !strings.Contains(c.GetHeader("Accept"), gin.MIMEHTML)
}

func stashClaim(c *gin.Context, claim *identity.Claim) {
	if claim == nil {
		return
	}
	c.Set("user_id", claim.ID().String())
	c.Set("role", string(claim.Role()))
}
