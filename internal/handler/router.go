package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripflow/internal/handler/api"
	"tripflow/internal/handler/middleware"
	"tripflow/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	sessionHandler *api.SessionHandler,
	tripsHandler *api.TripsHandler,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, sessionHandler, tripsHandler, authHandler, paymentHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	sessionHandler *api.SessionHandler,
	tripsHandler *api.TripsHandler,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	// The payment provider redirects the browser here, outside /api.
	payment := engine.Group("/payment")
	payment.Use(sessionMiddleware.Resolve())
	addRoutes(payment, []route{
		{Method: http.MethodGet, Path: "/return", Handler: paymentHandler.Return},
	})

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signin", Handler: authHandler.SignIn},
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.SignUp},
				{Method: http.MethodPost, Path: "/signout", Handler: authHandler.SignOut},
			})
		}

		session := apiGroup.Group("/session")
		session.Use(sessionMiddleware.Resolve())
		{
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "/state", Handler: sessionHandler.State},
				{Method: http.MethodPost, Path: "/chat", Handler: sessionHandler.Chat},
				{Method: http.MethodPost, Path: "/select-flight", Handler: sessionHandler.SelectFlight},
				{Method: http.MethodPost, Path: "/select-hotel", Handler: sessionHandler.SelectHotel},
				{Method: http.MethodPost, Path: "/nights", Handler: sessionHandler.SetNights},
				{Method: http.MethodPost, Path: "/passengers", Handler: sessionHandler.SetPassengers},
				{Method: http.MethodPost, Path: "/submit", Handler: sessionHandler.Submit},
				{Method: http.MethodPost, Path: "/retry", Handler: sessionHandler.Retry},
				{Method: http.MethodPost, Path: "/dismiss", Handler: sessionHandler.Dismiss},
				{Method: http.MethodPost, Path: "/reset", Handler: sessionHandler.Reset},
			})
		}

		trips := apiGroup.Group("")
		trips.Use(sessionMiddleware.Resolve())
		{
			addRoutes(trips, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: tripsHandler.ListBookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: tripsHandler.GetBooking},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: tripsHandler.CancelBooking},
				{Method: http.MethodGet, Path: "/itineraries", Handler: tripsHandler.ListItineraries},
				{Method: http.MethodDelete, Path: "/itineraries/:id", Handler: tripsHandler.DeleteItinerary},
				{Method: http.MethodGet, Path: "/preferences", Handler: tripsHandler.Preferences},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
