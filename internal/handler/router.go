package handler

import (
	"net/http"

	"rebate-ledger/internal/handler/api"
	"rebate-ledger/internal/handler/middleware"
	"rebate-ledger/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

const (
	// room for multipart headers and boundaries around the photo itself
	multipartOverhead = 1 << 20
	// JSON field names and the other entry fields around an inline receipt
	entryBodyOverhead = 64 << 10
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Session        *api.SessionHandler
	Ledger         *api.LedgerHandler
	Receipt        *api.ReceiptHandler
	Reward         *api.RewardHandler
	Bundle         *api.BundleHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/sessions", Handler: p.Session.Issue},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(p.AuthMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: p.Ledger.Dashboard},

			{Method: http.MethodGet, Path: "/entries", Handler: p.Ledger.ListEntries},
			{Method: http.MethodPost, Path: "/entries", Handler: p.Ledger.CreateEntry, Mw: []gin.HandlerFunc{
				middleware.LimitBody(int64(p.Config.Store.QuotaBytes) + entryBodyOverhead),
			}},
			{Method: http.MethodDelete, Path: "/entries", Handler: p.Ledger.ClearEntries},
			{Method: http.MethodGet, Path: "/entries/:id", Handler: p.Ledger.GetEntry},
			{Method: http.MethodDelete, Path: "/entries/:id", Handler: p.Ledger.DeleteEntry},

			{Method: http.MethodPost, Path: "/receipts", Handler: p.Receipt.Upload, Mw: []gin.HandlerFunc{
				middleware.LimitBody(int64(p.Config.Receipt.MaxRawBytes) + multipartOverhead),
			}},

			{Method: http.MethodGet, Path: "/rewards", Handler: p.Reward.Overview},
			{Method: http.MethodPost, Path: "/rewards/:prizeId/redeem", Handler: p.Reward.Redeem},
			{Method: http.MethodDelete, Path: "/redemptions", Handler: p.Reward.ClearRedemptions},

			{Method: http.MethodGet, Path: "/catalog", Handler: p.Bundle.Catalog},
			{Method: http.MethodPost, Path: "/bundles/quote", Handler: p.Bundle.Quote},
			{Method: http.MethodPost, Path: "/bundles", Handler: p.Bundle.Save},
			{Method: http.MethodGet, Path: "/bundles", Handler: p.Bundle.List},
			{Method: http.MethodDelete, Path: "/bundles", Handler: p.Bundle.Clear},
		})
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
