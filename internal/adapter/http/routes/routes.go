package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "oficina/docs" // generated by swag init
	"oficina/internal/adapter/http/handlers"
	"oficina/internal/adapter/http/middleware"
	"oficina/internal/adapter/persistence/repository"
	"oficina/internal/infrastructure/config"
	"oficina/internal/infrastructure/notification"
	"oficina/internal/infrastructure/payments"
	"oficina/internal/usecase"
	"oficina/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Config  config.Config
	Storage *repository.Storage
	Feed    *notification.Feed
	Gateway interfaces.IPaymentGateway
}

// Run will start the server and block until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	storage, err := repository.OpenStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoToken)
	if err != nil {
		zap.L().Warn("[routes][startup] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	router := NewRouter(Deps{
		Config:  cfg,
		Storage: storage,
		Feed:    notification.NewFeed(cfg.NotificationFeed),
		Gateway: paymentGateway,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[routes][startup] listening", zap.String("addr", srv.Addr), zap.String("storage", storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("[routes][shutdown] draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter wires use cases and handlers onto a gin engine.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	loc := d.Config.Location()
	s := d.Storage

	kanbanUseCase := usecase.NewKanbanUseCase(s.Orders, d.Feed, loc)
	dashboardUseCase := usecase.NewDashboardUseCase(s.Orders, s.Settings, d.Config.MonthlyGoal, loc)
	intakeUseCase := usecase.NewIntakeUseCase(s.Clients, s.Vehicles, s.Orders)
	orderItemUseCase := usecase.NewOrderItemUseCase(s.Orders)
	paymentUseCase := usecase.NewOrderPaymentUseCase(s.Payments, s.Orders, d.Gateway)

	staff := middleware.RequireRoles(d.Config.JWTSecret, middleware.RoleAdmin, middleware.RoleStaff)
	admin := middleware.RequireRoles(d.Config.JWTSecret, middleware.RoleAdmin)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addKanbanRoutes(v1, staff, handlers.NewKanbanHandler(kanbanUseCase))
	addDashboardRoutes(v1, staff, admin, handlers.NewDashboardHandler(dashboardUseCase))
	addOrderRoutes(v1, staff,
		handlers.NewIntakeHandler(intakeUseCase),
		handlers.NewOrderItemHandler(orderItemUseCase),
		handlers.NewOrderPaymentHandler(paymentUseCase),
	)
	addNotificationRoutes(v1, staff, handlers.NewNotificationHandler(d.Feed))

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestLogger())
}
