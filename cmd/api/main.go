package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"aqarverse/internal/adapter/api"
	"aqarverse/internal/adapter/api/handler"
	apimiddleware "aqarverse/internal/adapter/api/middleware"
	"aqarverse/internal/adapter/api/router"
	"aqarverse/internal/adapter/repository"
	"aqarverse/internal/domain/service"
	"aqarverse/internal/infrastructure/cache"
	"aqarverse/internal/infrastructure/firebase"
	"aqarverse/internal/infrastructure/storage"
	"aqarverse/internal/infrastructure/websocket"
	"aqarverse/internal/usecase"
	"aqarverse/pkg/config"
)

const roleCacheTTL = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		serviceAccountPath = ""
	} else if serviceAccountPath != "" {
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

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	var fileService service.FileUploadService
	if cfg.StorageEnabled {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		fileService = storageClient
	}

	var roleCache *cache.RoleCache
	if cfg.RedisAddr != "" {
		roleCache, err = cache.NewRoleCache(cfg.RedisAddr, cfg.RedisPassword, roleCacheTTL)
		if err != nil {
			log.Printf("Redis unavailable, role caching disabled: %v", err)
		} else {
			defer roleCache.Close()
		}
	}

	propertyRepo := repository.NewFirestorePropertyRepository(firestoreClient)
	companyRepo := repository.NewFirestoreCompanyRepository(firestoreClient)
	customerRepo := repository.NewFirestoreCustomerRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	roleResolver := usecase.NewRoleResolver(companyRepo, customerRepo, adminRepo, roleCache)
	authUseCase := usecase.NewAuthUseCase(firebaseAuthClient, companyRepo, customerRepo, roleResolver)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, fileService, cfg.StorageEnabled)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, propertyRepo, companyRepo, fileService)
	profileUseCase := usecase.NewProfileUseCase(companyRepo, customerRepo, fileService, cfg.StorageEnabled)

	handler.Setup(authUseCase, propertyUseCase, favoriteUseCase, profileUseCase, wsManager)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(roleResolver)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
