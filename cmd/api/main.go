package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SubrotoKumar7/article-arena-server/api/routes"
	"github.com/SubrotoKumar7/article-arena-server/internal/config"
	"github.com/SubrotoKumar7/article-arena-server/internal/handlers"
	mongorepo "github.com/SubrotoKumar7/article-arena-server/internal/repositories/mongodb"
	"github.com/SubrotoKumar7/article-arena-server/internal/services"
	"github.com/SubrotoKumar7/article-arena-server/pkg/identity"
	"github.com/SubrotoKumar7/article-arena-server/pkg/mongodb"
	"github.com/SubrotoKumar7/article-arena-server/pkg/payments"
	"github.com/joho/godotenv"
)

func main() {
	// Local development reads secrets from a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)
	if err := mongorepo.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	verifier, err := identity.NewClient(context.Background(), cfg.Firebase.CredentialsFile, cfg.Firebase.MockVerifier)
	if err != nil {
		log.Fatalf("Failed to initialize identity client: %v", err)
	}
	gateway := payments.NewClient(cfg.Stripe.SecretKey, cfg.Stripe.SuccessURL, cfg.Stripe.CancelURL, cfg.Stripe.MockAPI)

	// Repositories
	userRepo := mongorepo.NewUserRepository(db)
	contestRepo := mongorepo.NewContestRepository(db)
	paymentRepo := mongorepo.NewPaymentRepository(db)
	participantRepo := mongorepo.NewParticipantRepository(db)
	submissionRepo := mongorepo.NewSubmissionRepository(db)
	winnerRepo := mongorepo.NewWinnerRepository(db)
	txRunner := mongorepo.NewTxRunner(mongoClient.Raw())

	// Services
	userService := services.NewUserService(userRepo)
	contestService := services.NewContestService(contestRepo, userRepo)
	paymentService := services.NewPaymentService(gateway, paymentRepo, participantRepo, contestRepo, userRepo, txRunner, cfg.Stripe.Currency)
	submissionService := services.NewSubmissionService(submissionRepo, participantRepo, contestRepo)
	winnerService := services.NewWinnerService(winnerRepo, submissionRepo, participantRepo, contestRepo, userRepo, txRunner)

	// Handlers
	deps := routes.HandlerDependencies{
		UserHandler:       handlers.NewUserHandler(userService),
		ContestHandler:    handlers.NewContestHandler(contestService),
		PaymentHandler:    handlers.NewPaymentHandler(paymentService),
		SubmissionHandler: handlers.NewSubmissionHandler(submissionService),
		WinnerHandler:     handlers.NewWinnerHandler(winnerService),
		Verifier:          verifier,
		UserRepo:          userRepo,
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
