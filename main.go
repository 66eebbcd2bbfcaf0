package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"booklibrary_backend/internals/configs"
	database "booklibrary_backend/internals/databases"
	"booklibrary_backend/internals/features/library/books/repository"
	"booklibrary_backend/internals/features/library/books/scheduler"
	"booklibrary_backend/internals/features/library/books/service"
	"booklibrary_backend/internals/features/library/books/views"
	helper "booklibrary_backend/internals/helpers"
	"booklibrary_backend/internals/helpers/broker"
	middlewares "booklibrary_backend/internals/middlewares"
	routes "booklibrary_backend/internals/route"
	"booklibrary_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		Views:                 views.NewEngine(),
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	middlewares.SetupMiddlewares(app)

	// 📦 Store
	repo := newRepository()

	// 📣 Book events (optional)
	var publisher service.EventPublisher = service.NoopPublisher{}
	if configs.AMQPURL != "" {
		p, err := broker.NewAMQPPublisher(configs.AMQPURL, configs.AMQPExchange)
		if err != nil {
			log.Printf("[AMQP] disabled: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	svc := service.NewLibraryService(repo, publisher)
	if _, err := svc.BackfillIDs(context.Background()); err != nil {
		log.Printf("[STORE] id backfill skipped: %v", err)
	}

	// 🌱 Seed (optional)
	seeds.RunAllSeeds(context.Background(), svc, configs.SeedFile)

	// ⏱ Backups (optional)
	if configs.BackupCron != "" {
		c, err := scheduler.StartBackupScheduler(repo, scheduler.BackupConfig{
			CronSchedule: configs.BackupCron,
			Dir:          configs.BackupDir,
		})
		if err != nil {
			log.Fatalf("❌ backup scheduler: %v", err)
		}
		defer c.Stop()
	}

	// ✅ Routes
	routes.SetupRoutes(app, svc)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s (store %s)", configs.Port, repo.Name())
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}

// errorHandler keeps the JSON envelope for /api and fiber's plain text elsewhere.
func errorHandler(c *fiber.Ctx, err error) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return helper.FromFiberError(c, err)
	}
	return fiber.DefaultErrorHandler(c, err)
}

func newRepository() repository.Repository {
	if configs.StoreDriver != configs.StorePostgres {
		return repository.NewFileRepository(configs.DataFile)
	}

	database.ConnectDB()
	database.TunePool()
	repo, err := repository.NewPostgresRepository(database.DB)
	if err != nil {
		log.Fatalf("❌ postgres store: %v", err)
	}
	return repo
}
