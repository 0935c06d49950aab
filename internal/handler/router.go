package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"swiss-virtual-airline/internal/handler/api"
	"swiss-virtual-airline/internal/handler/middleware"
	"swiss-virtual-airline/internal/pkg/config"
	"swiss-virtual-airline/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Departure *api.DepartureHandler
	Booking   *api.BookingHandler
	Bot       *api.BotHandler
	Rewards   *api.RewardsHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	m *metrics.Metrics,
	registry *prometheus.Registry,
) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, handlers, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/", apiIndex)
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		departures := apiGroup.Group("/departures")
		{
			addRoutes(departures, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Departure.ListDepartures},
				{Method: http.MethodPost, Path: "", Handler: h.Departure.ReplaceDepartures},
				{Method: http.MethodPost, Path: "/add", Handler: h.Departure.AddDeparture},
				{Method: http.MethodPut, Path: "/:flightNumber", Handler: h.Departure.UpdateDeparture},
				{Method: http.MethodDelete, Path: "/:flightNumber", Handler: h.Departure.DeleteDeparture},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/discord", Handler: h.Auth.LoginWithDiscord},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListBookings},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodGet, Path: "/:userId", Handler: h.Booking.ListUserBookings, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodDelete, Path: "/:bookingId", Handler: h.Booking.CancelBooking, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}

		bot := apiGroup.Group("/bot")
		{
			addRoutes(bot, []route{
				{Method: http.MethodPost, Path: "/book", Handler: h.Bot.CreateBotBooking},
			})
		}

		rewards := apiGroup.Group("/rewards")
		{
			// Static paths are registered alongside the :userId param route;
			// gin resolves exact segments before the wildcard.
			addRoutes(rewards, []route{
				{Method: http.MethodGet, Path: "/leaderboard", Handler: h.Rewards.Leaderboard},
				{Method: http.MethodGet, Path: "/tiers", Handler: h.Rewards.Tiers},
				{Method: http.MethodGet, Path: "/:userId", Handler: h.Rewards.GetAccount, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodPost, Path: "/award", Handler: h.Rewards.AwardPoints, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
				{Method: http.MethodPost, Path: "/complete-flight", Handler: h.Rewards.CompleteFlight, Mw: []gin.HandlerFunc{authMiddleware.RequireAuth()}},
			})
		}
	}
}

// @Summary API index
// @Description List the available endpoint groups
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func apiIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Swiss Virtual Airline API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"departures": "/api/departures",
			"auth":       "/api/auth",
			"bookings":   "/api/bookings",
			"bot":        "/api/bot",
			"rewards":    "/api/rewards",
		},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
