package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"greenrfq/internal/domain/actor"
	"greenrfq/internal/handler/api"
	"greenrfq/internal/handler/middleware"
	"greenrfq/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, rfqHandler *api.RFQHandler, claimHandler *api.ClaimHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, rfqHandler, claimHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, rfqHandler *api.RFQHandler, claimHandler *api.ClaimHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rfqs := apiGroup.Group("/rfqs")
		rfqs.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleArchitect, actor.RoleAdmin))
		{
			addRoutes(rfqs, []route{
				{Method: http.MethodPost, Path: "", Handler: rfqHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: rfqHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: rfqHandler.Get},
				{Method: http.MethodGet, Path: "/:id/queue", Handler: rfqHandler.QueueStatus},
				{Method: http.MethodPost, Path: "/:id/close", Handler: rfqHandler.Close},
				{Method: http.MethodPost, Path: "/:id/archive", Handler: rfqHandler.Archive},
			})
		}

		inbox := apiGroup.Group("/inbox")
		inbox.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleSupplier))
		{
			addRoutes(inbox, []route{
				{Method: http.MethodGet, Path: "", Handler: rfqHandler.Inbox},
				{Method: http.MethodPost, Path: "/:id/viewed", Handler: rfqHandler.MarkViewed},
				{Method: http.MethodPost, Path: "/:id/respond", Handler: rfqHandler.Respond},
			})
		}

		// Claim endpoints are public: the caller does not have an
		// account yet. A per-IP limiter guards against enumeration.
		// Token issuance is the exception: the raw token is a claim
		// credential, so only operators mint one.
		claims := apiGroup.Group("/claims")
		claims.Use(middleware.NewRateLimiter(cfg.Claim.RequestsPerMinute).Middleware())
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleAdmin)}
			addRoutes(claims, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: claimHandler.Status},
				{Method: http.MethodPost, Path: "/:id/token", Handler: claimHandler.RequestToken, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/opt-out", Handler: claimHandler.OptOut},
				{Method: http.MethodPost, Path: "/verify", Handler: claimHandler.StartVerification},
				{Method: http.MethodPost, Path: "/complete", Handler: claimHandler.Complete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(actor.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/ingest", Handler: adminHandler.Ingest},
				{Method: http.MethodPost, Path: "/rfqs/:id/distribute", Handler: adminHandler.Distribute},
				{Method: http.MethodPost, Path: "/suppliers/:id/stats/recompute", Handler: adminHandler.RecomputeStats},
				{Method: http.MethodPost, Path: "/usage/reset", Handler: adminHandler.ResetUsage},
				{Method: http.MethodPost, Path: "/dispatch/notify", Handler: adminHandler.NotifyDue},
				{Method: http.MethodPost, Path: "/dispatch/sweep", Handler: adminHandler.SweepExpired},
				{Method: http.MethodGet, Path: "/claims/:id/audit", Handler: claimHandler.AuditTrail},
			})
		}
	}
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
