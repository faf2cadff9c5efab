package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fadilmartias/careerboost/internal/config"
	"github.com/fadilmartias/careerboost/internal/domain/fiber/handler"
	"github.com/fadilmartias/careerboost/internal/flow"
	"github.com/fadilmartias/careerboost/internal/logging"
	"github.com/fadilmartias/careerboost/internal/middleware"
	"github.com/fadilmartias/careerboost/internal/model"
	"github.com/fadilmartias/careerboost/internal/repository"
	"github.com/fadilmartias/careerboost/internal/service"
	"github.com/fadilmartias/careerboost/internal/session"
	"github.com/fadilmartias/careerboost/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	appLog := logging.New(os.Stdout, appConfig.Env)

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		// resume uploads go up to 5MB plus multipart framing
		BodyLimit: 6 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     originOrAll(appConfig.BaseURL),
		AllowCredentials: appConfig.BaseURL != "",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: sessionKey(ctx, appConfig, appLog),
	}))

	db := ConnectDB()

	generator, err := service.NewGenerator(ctx)
	if err != nil {
		log.Fatal(err)
	}
	storage, err := service.NewStorageService(ctx, config.LoadStorageConfig())
	if err != nil {
		log.Fatal(err)
	}
	if !config.LoadStorageConfig().Enabled() {
		appLog.Warn(ctx, "S3 storage not configured, profile picture uploads are disabled")
	}

	userRepo := repository.NewUserRepository(db)
	sessions := session.NewStore(config.LoadSessionConfig(), appConfig.IsProduction())
	runner := flow.NewRunner(generator, appLog)

	authUsecase := usecase.NewAuthUsecase(userRepo, service.NewArgon2Hasher(), appLog)
	profileUsecase := usecase.NewProfileUsecase(userRepo, storage, appLog)
	careerUsecase := usecase.NewCareerUsecase(userRepo, runner, appLog)

	handler.NewAuthHandler(authUsecase, sessions).RegisterRoutes(app)
	handler.NewProfileHandler(profileUsecase, sessions).RegisterRoutes(app)
	handler.NewFlowHandler(careerUsecase, sessions).RegisterRoutes(app)

	appLog.Info(ctx, "server starting", "port", appConfig.Port, "env", appConfig.Env, "llm_provider", config.LoadLLMConfig().Provider)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.User{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

// sessionKey returns the cookie encryption key. Outside production a
// missing key is replaced by a random one, which logs everyone out on
// restart.
func sessionKey(ctx context.Context, appConfig *config.AppConfig, appLog logging.Logger) string {
	key := config.LoadSessionConfig().EncryptionKey
	if key != "" {
		return key
	}
	if appConfig.IsProduction() {
		log.Fatal("SESSION_ENCRYPTION_KEY must be set in production")
	}
	appLog.Warn(ctx, "SESSION_ENCRYPTION_KEY not set, using a temporary key")
	return encryptcookie.GenerateKey()
}

func originOrAll(origin string) string {
	if origin == "" {
		return "*"
	}
	return origin
}
