package main

import (
	"context"
	"errors"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printshop-service/internal/auth"
	"printshop-service/internal/config"
	"printshop-service/internal/domain/siteimage"
	"printshop-service/internal/http"
	"printshop-service/internal/infra/s3"
	"printshop-service/internal/live"
	"printshop-service/internal/mail"
	"printshop-service/internal/repository/postgres"

	"github.com/joho/godotenv"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
	seedTimeout      = 30 * time.Second
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Configuration loaded successfully")

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("Database connection established")

	quoteRepo := postgres.NewQuoteRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	portfolioRepo := postgres.NewPortfolioRepository(db)
	siteImageRepo := postgres.NewSiteImageRepository(db)
	staffRepo := postgres.NewStaffRepository(db)

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), seedTimeout)
	if err := siteImageRepo.Seed(seedCtx, siteimage.DefaultSlots); err != nil {
		cancelSeed()
		log.Fatalf("Failed to seed site images: %v", err)
	}
	cancelSeed()

	storage, err := s3.NewClient(&cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	log.Println("S3 client initialized")

	mailer, err := mail.NewNotifier(&cfg.Mail)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	hub := live.NewHub()
	defer hub.Close()

	hub.Register(live.CollectionQuotes, func(ctx context.Context) (interface{}, error) {
		return quoteRepo.List(ctx, 0)
	})
	hub.Register(live.CollectionClients, func(ctx context.Context) (interface{}, error) {
		return clientRepo.List(ctx)
	})
	hub.Register(live.CollectionPortfolio, func(ctx context.Context) (interface{}, error) {
		return portfolioRepo.List(ctx)
	})
	hub.Register(live.CollectionSiteImages, func(ctx context.Context) (interface{}, error) {
		return siteImageRepo.List(ctx)
	})

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(jwtService)

	serverDeps := &http.ServerDependencies{
		Config:         cfg,
		QuoteRepo:      quoteRepo,
		ClientRepo:     clientRepo,
		PortfolioRepo:  portfolioRepo,
		SiteImageRepo:  siteImageRepo,
		StaffRepo:      staffRepo,
		Storage:        storage,
		Hub:            hub,
		Mailer:         mailer,
		JWTService:     jwtService,
		AuthMiddleware: authMiddleware,
	}

	server := http.NewServer(serverDeps)

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		// Start returns ErrServerClosed while Shutdown drains connections.
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
