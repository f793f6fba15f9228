package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trendloom/backoffice/internal/adapters/config"
	"github.com/trendloom/backoffice/internal/adapters/http/controllers"
	"github.com/trendloom/backoffice/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	userController    *controllers.UserController
	rateLimiter       middleware.RateLimiter
	verifier          middleware.TokenVerifier
	rateLimit         config.RateLimitConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	userController *controllers.UserController,
	rateLimiter middleware.RateLimiter,
	verifier middleware.TokenVerifier,
	rateLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		userController:    userController,
		rateLimiter:       rateLimiter,
		verifier:          verifier,
		rateLimit:         rateLimit,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	rl := middleware.RateLimit(r.rateLimiter, r.rateLimit.Limit, r.rateLimit.Window)
	admin := middleware.RequireAdmin(r.verifier)

	apiGroup := router.Group("/api")
	{
		apiGroup.Use(middleware.LogRequest())
		apiGroup.GET("/health", r.healthController.Health)

		productGroup := apiGroup.Group("/product")
		{
			productGroup.GET("/list", r.productController.List)
			productGroup.POST("/single", r.productController.Single)
			productGroup.POST("/add", admin, r.productController.Add)
			productGroup.PUT("/edit/:productId", admin, r.productController.Edit)
			productGroup.POST("/remove", admin, r.productController.Remove)
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", rl, r.userController.Register)
			userGroup.POST("/login", rl, r.userController.Login)
			userGroup.POST("/admin", rl, r.userController.AdminLogin)
			userGroup.GET("/list", admin, r.userController.List)
			userGroup.POST("/block", admin, r.userController.ToggleBlock)
			userGroup.GET("/orders/:userId", admin, r.userController.Orders)
		}
	}
}

func (r *Router) ListenAndServe(ctx context.Context, config config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", config.BindInterface, config.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
