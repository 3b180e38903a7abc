package cookie

import (
	"net/http"
	"time"

	"tripflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName = "tripflow_session"
	TokenCookieName   = "backend_token"
)

func SetSessionCookie(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		SessionCookieName,
		sessionID,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

// SetTokenCookie stores the backend-issued auth token. rememberMe extends the
// cookie lifetime; a zero ttl makes it a session cookie.
func SetTokenCookie(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		TokenCookieName,
		token,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func ClearTokenCookie(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		TokenCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context) string {
	id, _ := c.Cookie(SessionCookieName)
	return id
}

func GetToken(c *gin.Context) string {
	token, _ := c.Cookie(TokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
