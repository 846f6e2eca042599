package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	analyticsDelivery "ankiplan-backend/internal/analytics/delivery"
	authDelivery "ankiplan-backend/internal/auth/delivery"
	authUsecasePkg "ankiplan-backend/internal/auth/usecase"
	groupDelivery "ankiplan-backend/internal/group/delivery"
	"ankiplan-backend/internal/motivation"
	taskDelivery "ankiplan-backend/internal/task/delivery"
	"ankiplan-backend/pkg/config"
	"ankiplan-backend/pkg/storage"

	analyticsUsecasePkg "ankiplan-backend/internal/analytics/usecase"
	groupUsecasePkg "ankiplan-backend/internal/group/usecase"
	taskUsecasePkg "ankiplan-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// Handler owns the gin engine and the delivery handlers behind it.
type Handler struct {
	engine *gin.Engine
}

// NewHandler assembles the HTTP surface from the already-constructed usecases.
func NewHandler(
	authUsecase authUsecasePkg.AuthUsecase,
	taskUsecase taskUsecasePkg.TaskUsecase,
	groupUsecase groupUsecasePkg.GroupUsecase,
	analyticsUsecase analyticsUsecasePkg.AnalyticsUsecase,
	proofs *storage.LocalStorage,
	cfg *config.Config,
) *Handler {
	engine := gin.Default()

	authHandler := authDelivery.NewAuthHandler(authUsecase)
	taskHandler := taskDelivery.NewTaskHandler(taskUsecase, proofs)
	groupHandler := groupDelivery.NewGroupHandler(groupUsecase)
	analyticsHandler := analyticsDelivery.NewAnalyticsHandler(analyticsUsecase)
	motivationHandler := motivation.NewHandler()

	// Proof artifacts are served directly from disk.
	engine.Static("/uploads", proofs.Dir())

	SetupRoutes(engine, authUsecase, authHandler, taskHandler, groupHandler, analyticsHandler, motivationHandler)

	return &Handler{engine: engine}
}

// Run serves HTTP on addr until ctx is cancelled, then drains in-flight
// requests before returning. A listen failure is returned immediately.
func (h *Handler) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.engine}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
