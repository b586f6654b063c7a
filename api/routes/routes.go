package routes

import (
	"net/http"
	"time"

	"driveincinema/api/handler"
	"driveincinema/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Products       *handler.ProductHandler
	Orders         *handler.OrderHandler
	Points         *handler.PointsHandler
	Quiz           *handler.QuizHandler
	TMDB           *handler.TMDBHandler
	Admin          *handler.AdminHandler
	Health         echo.HandlerFunc
	Metrics        http.Handler
	AuthMiddleware middleware.AuthMiddleware
	AuthRate       *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(e *echo.Echo, authMiddleware middleware.AuthMiddleware) *Router {
	return &Router{
		Echo:           e,
		AuthMiddleware: authMiddleware,
		AuthRate:       middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth
	requireAdmin := middleware.RequireAdmin

	if r.Auth != nil {
		e.POST("/register", r.Auth.Register, r.AuthRate.Middleware())
		e.POST("/verify", r.Auth.Verify, r.AuthRate.Middleware())
		e.POST("/login", r.Auth.Login, r.LoginRate.Middleware())
		e.POST("/logout", r.Auth.Logout, requireAuth)
		e.POST("/forgot-password", r.Auth.ForgotPassword, r.LoginRate.Middleware())
		e.POST("/reset-password", r.Auth.ResetPassword, r.AuthRate.Middleware())
		e.GET("/me", r.Auth.Me, requireAuth)
	}

	if r.Points != nil {
		e.POST("/user/add-points", r.Points.Add, requireAuth)
	}

	if r.Orders != nil {
		e.POST("/orders", r.Orders.Create, requireAuth)
		e.GET("/orders", r.Orders.List, requireAuth)
		e.PUT("/orders/:id", r.Orders.UpdateStatus, requireAuth, requireAdmin)
	}

	if r.Products != nil {
		e.GET("/products", r.Products.List)
		e.POST("/products", r.Products.Create, requireAuth, requireAdmin)
		e.PATCH("/products/:id", r.Products.Update, requireAuth, requireAdmin)
		e.DELETE("/products/:id", r.Products.Delete, requireAuth, requireAdmin)
	}

	if r.Quiz != nil {
		e.POST("/quiz/admin", r.Quiz.Activate, requireAuth, requireAdmin)
		e.GET("/quiz/active", r.Quiz.Active)
		e.POST("/quiz/answer", r.Quiz.Answer, r.AuthRate.Middleware())
	}

	if r.TMDB != nil {
		e.GET("/tmdb/search", r.TMDB.Search)
	}

	if r.Admin != nil {
		admin := e.Group("/admin", r.AuthMiddleware.AdminPageGate)
		admin.GET("", r.Admin.Dashboard)
	}

	if r.Health != nil {
		e.GET("/healthz", r.Health)
	}
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}
}
