package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "ankiplan-backend/cmd/api"
	analyticsUsecase "ankiplan-backend/internal/analytics/usecase"
	authdomain "ankiplan-backend/internal/auth/domain"
	authRepo "ankiplan-backend/internal/auth/repository"
	authUsecase "ankiplan-backend/internal/auth/usecase"
	"ankiplan-backend/internal/gamification"
	groupdomain "ankiplan-backend/internal/group/domain"
	groupRepo "ankiplan-backend/internal/group/repository"
	groupUsecase "ankiplan-backend/internal/group/usecase"
	taskdomain "ankiplan-backend/internal/task/domain"
	taskRepo "ankiplan-backend/internal/task/repository"
	"ankiplan-backend/internal/task/scheduler"
	taskUsecase "ankiplan-backend/internal/task/usecase"
	"ankiplan-backend/pkg/config"
	"ankiplan-backend/pkg/database"
	"ankiplan-backend/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&taskdomain.Task{},
		&taskdomain.TaskLog{},
		&groupdomain.Group{},
		&groupdomain.GroupMember{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Proof artifact storage
	proofs, err := storage.NewLocalStorage(cfg.UploadsDir)
	if err != nil {
		log.Fatal("Failed to initialize uploads storage:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	taskLogRepository := taskRepo.NewGormTaskLogRepository(db)
	groupRepository := groupRepo.NewGormGroupRepository(db)

	// Initialize use cases
	ledger := gamification.NewLedger(userRepository)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, taskLogRepository, ledger, proofs)
	groupUsecaseInstance := groupUsecase.NewGroupUsecase(groupRepository, userRepository)
	analyticsUsecaseInstance := analyticsUsecase.NewAnalyticsUsecase(taskLogRepository, userRepository)

	// Start the reset sweeper
	sweeper := scheduler.NewResetScheduler(taskRepository, cfg.SweepInterval, cfg.SweepRetryInterval)
	sweeper.Start()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance,
		taskUsecaseInstance,
		groupUsecaseInstance,
		analyticsUsecaseInstance,
		proofs,
		cfg,
	)

	// Serve until interrupted, then drain HTTP before stopping the sweeper so
	// in-flight completions finish against a still-running scheduler.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Run(ctx, ":"+cfg.Port); err != nil {
		log.Printf("HTTP server error: %v", err)
	}

	log.Println("Shutting down")
	sweeper.Stop()
}
