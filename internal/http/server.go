package http

import (
	"context"
	stdhttp "net/http"

	"printshop-service/internal/auth"
	"printshop-service/internal/config"
	"printshop-service/internal/http/handler"
	"printshop-service/internal/http/middleware"
	"printshop-service/internal/live"
	"printshop-service/internal/repository/postgres"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "12M" // JSON bodies are parsed under a 1M bound; the headroom is for image uploads.
)

type ServerDependencies struct {
	Config         *config.Config
	QuoteRepo      *postgres.QuoteRepository
	ClientRepo     *postgres.ClientRepository
	PortfolioRepo  *postgres.PortfolioRepository
	SiteImageRepo  *postgres.SiteImageRepository
	StaffRepo      *postgres.StaffRepository
	Storage        handler.StorageOperations
	Hub            *live.Hub
	Mailer         handler.QuoteNotifier
	JWTService     *auth.JWTService
	AuthMiddleware *auth.Middleware
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Strict rate limiting for login and the public quote form
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.StaffRepo, deps.JWTService)
	quoteHandler := handler.NewQuoteHandler(deps.QuoteRepo, deps.Hub)
	clientHandler := handler.NewClientHandler(deps.ClientRepo, deps.QuoteRepo, deps.Hub)
	portfolioHandler := handler.NewPortfolioHandler(deps.PortfolioRepo, deps.Storage, deps.Hub, deps.Config.App.MaxImageUploadSize)
	siteImageHandler := handler.NewSiteImageHandler(deps.SiteImageRepo, deps.Storage, deps.Hub, deps.Config.App.MaxImageUploadSize)
	dashboardHandler := handler.NewDashboardHandler(deps.QuoteRepo, deps.ClientRepo, deps.PortfolioRepo, deps.Config.App.DashboardRecent)
	streamHandler := handler.NewStreamHandler(deps.Hub)
	notifyHandler := handler.NewNotifyHandler(deps.QuoteRepo, deps.Mailer)

	// Public site endpoints
	e.POST("/quotes", quoteHandler.SubmitQuote, strictRateLimiter.Middleware())
	e.GET("/portfolio", portfolioHandler.ListPublicPortfolio)
	e.GET("/site-images/:page", siteImageHandler.ListPageImages)
	e.POST("/notifications/quote", notifyHandler.NotifyQuote, strictRateLimiter.Middleware())
	e.POST("/auth/login", authHandler.Login, strictRateLimiter.Middleware())
	e.GET("/health", healthCheck)

	// Admin back office, JWT required
	admin := e.Group("/api/admin")
	admin.Use(deps.AuthMiddleware.RequireJWT())

	admin.GET("/quotes", quoteHandler.ListQuotes)
	admin.GET("/quotes/:id", quoteHandler.GetQuote)
	admin.PATCH("/quotes/:id", quoteHandler.UpdateQuote)
	admin.DELETE("/quotes/:id", quoteHandler.DeleteQuote)

	admin.GET("/clients", clientHandler.ListClients)
	admin.GET("/clients/prospects", clientHandler.ListProspects)
	admin.POST("/clients", clientHandler.CreateClient)
	admin.PATCH("/clients/:id", clientHandler.UpdateClient)
	admin.DELETE("/clients/:id", clientHandler.DeleteClient)

	admin.GET("/portfolio", portfolioHandler.ListPortfolio)
	admin.POST("/portfolio", portfolioHandler.CreateItem)
	admin.PATCH("/portfolio/:id", portfolioHandler.UpdateItem)
	admin.POST("/portfolio/:id/image", portfolioHandler.ReplaceImage)
	admin.POST("/portfolio/:id/toggle", portfolioHandler.ToggleVisibility)
	admin.DELETE("/portfolio/:id", portfolioHandler.DeleteItem)

	admin.GET("/site-images", siteImageHandler.ListSiteImages)
	admin.POST("/site-images/:id/image", siteImageHandler.UploadCustom)
	admin.POST("/site-images/:id/revert", siteImageHandler.Revert)

	admin.GET("/dashboard", dashboardHandler.Dashboard)
	admin.GET("/stream/:collection", streamHandler.Stream)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
