package middleware

import (
	"tripflow/internal/gateway"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/pkg/cookie"
	"tripflow/internal/pkg/token"
	"tripflow/internal/workflow"

	"github.com/gin-gonic/gin"
)

const controllerContextKey = "workflow_controller"

type SessionMiddleware struct {
	store     *workflow.Store
	cookieCfg config.CookieConfig
	ttl       config.SessionConfig
	clk       clock.Clock
}

func NewSessionMiddleware(store *workflow.Store, cfg config.Config, clk clock.Clock) *SessionMiddleware {
	return &SessionMiddleware{
		store:     store,
		cookieCfg: cfg.Cookie,
		ttl:       cfg.Session,
		clk:       clk,
	}
}

// Resolve binds the request to its per-session workflow controller and
// forwards the backend auth token, if any, on the request context.
func (m *SessionMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, controller := m.store.Resolve(cookie.GetSessionID(c))
		cookie.SetSessionCookie(c, m.cookieCfg, id, m.ttl.TTL)
		c.Set(controllerContextKey, controller)

		if raw := cookie.GetToken(c); raw != "" {
			if token.Expired(raw, m.clk.Now()) {
				// An expired backend token would only earn a 401; drop the
				// cookie so the UI re-prompts sign-in instead.
				cookie.ClearTokenCookie(c, m.cookieCfg)
			} else {
				ctx := gateway.WithAuthToken(c.Request.Context(), raw)
				c.Request = c.Request.WithContext(ctx)
			}
		}

		c.Next()
	}
}

// GetController retrieves the session's controller placed by Resolve.
func GetController(c *gin.Context) (*workflow.Controller, bool) {
	v, exists := c.Get(controllerContextKey)
	if !exists {
		return nil, false
	}
	controller, ok := v.(*workflow.Controller)
	return controller, ok
}
