package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"reparex/internal/adapter/api"
	"reparex/internal/adapter/api/handler"
	apimiddleware "reparex/internal/adapter/api/middleware"
	"reparex/internal/adapter/api/router"
	"reparex/internal/adapter/repository"
	"reparex/internal/infrastructure/database"
	"reparex/internal/infrastructure/firebase"
	"reparex/internal/usecase"
	"reparex/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from env var (production) or file path (local dev);
	// with neither, the SDK falls back to application default credentials.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	db, err := database.New(cfg.DatabaseDSN, cfg.DatabaseAutomigrate)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	zoneRepo := repository.NewPostgresZoneRepository(db)
	professionRepo := repository.NewPostgresProfessionRepository(db)
	statusRepo := repository.NewPostgresStatusRepository(db)
	clientRepo := repository.NewPostgresClientRepository(db)
	workerRepo := repository.NewPostgresWorkerRepository(db)
	workerProfessionRepo := repository.NewPostgresWorkerProfessionRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	ratingRepo := repository.NewPostgresRatingRepository(db)

	firebaseAuthClient := firebase.NewAuthClient(authClient)

	authUseCase := usecase.NewAuthUseCase(clientRepo, firebaseAuthClient)
	zoneUseCase := usecase.NewZoneUseCase(zoneRepo)
	professionUseCase := usecase.NewProfessionUseCase(professionRepo)
	statusUseCase := usecase.NewStatusUseCase(statusRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	workerUseCase := usecase.NewWorkerUseCase(workerRepo)
	workerProfessionUseCase := usecase.NewWorkerProfessionUseCase(workerProfessionRepo)
	jobUseCase := usecase.NewJobUseCase(jobRepo, workerRepo, clientRepo, statusRepo)
	applicationUseCase := usecase.NewApplicationUseCase(applicationRepo)
	ratingUseCase := usecase.NewRatingUseCase(ratingRepo, jobRepo, statusRepo)

	handler.Setup(
		authUseCase,
		zoneUseCase,
		professionUseCase,
		statusUseCase,
		clientUseCase,
		workerUseCase,
		workerProfessionUseCase,
		jobUseCase,
		applicationUseCase,
		ratingUseCase,
	)
	handler.SetupHealthHandler(db)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
