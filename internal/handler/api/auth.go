package api

import (
	"context"
	"net/http"
	"time"

	"tripflow/internal/gateway"
	reqdto "tripflow/internal/handler/dto/request"
	resdto "tripflow/internal/handler/dto/response"
	"tripflow/internal/handler/httperr"
	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"
	"tripflow/internal/pkg/cookie"
	"tripflow/internal/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthGateway proxies credentials to the travel backend, which is the source
// of truth for authentication. Tripflow only relays the issued token.
type AuthGateway interface {
	SignIn(ctx context.Context, email, password string, rememberMe bool) (gateway.AuthResult, error)
	SignUp(ctx context.Context, name, email, password string) (gateway.AuthResult, error)
}

const fallbackTokenTTL = 30 * 24 * time.Hour

type AuthHandler struct {
	auth AuthGateway
	cfg  config.Config
	clk  clock.Clock
}

func NewAuthHandler(auth AuthGateway, cfg config.Config, clk clock.Clock) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg, clk: clk}
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req reqdto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password, req.RememberMe)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	h.setToken(c, result.Token, req.RememberMe)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.auth.SignUp(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondGatewayError(c, err)
		return
	}

	h.setToken(c, result.Token, false)
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// setToken stores the backend token in an HttpOnly cookie. Remember-me
// persists the cookie until the token itself expires; otherwise the cookie
// lives only for the browser session.
func (h *AuthHandler) setToken(c *gin.Context, raw string, rememberMe bool) {
	var ttl time.Duration
	if rememberMe {
		ttl = fallbackTokenTTL
		if exp, err := token.ExpiresAt(raw); err == nil {
			if until := exp.Sub(h.clk.Now()); until > 0 {
				ttl = until
			}
		}
	}
	cookie.SetTokenCookie(c, h.cfg.Cookie, raw, ttl)
}
