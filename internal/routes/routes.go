package routes

import (
	"github.com/gin-gonic/gin"

	"syndicpro/internal/auth"
	"syndicpro/internal/handlers"
	"syndicpro/internal/middleware"
	"syndicpro/internal/models"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Documents     *handlers.DocumentHandler
	Payments      *handlers.PaymentHandler
	Expenses      *handlers.ExpenseHandler
	Notifications *handlers.NotificationHandler
}

// Setup registers every route on the engine.
func Setup(r *gin.Engine, h Handlers, tokens *auth.TokenManager) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(tokens))

	staff := authed.Group("")
	staff.Use(middleware.RequireRoles(models.UserRoleSyndic, models.UserRoleSuperAdmin))

	authed.GET("/auth/me", h.Auth.Me)
	staff.POST("/auth/register", h.Auth.Register)

	staff.POST("/documents", h.Documents.Create)
	authed.GET("/documents", h.Documents.List)
	authed.GET("/documents/:id", h.Documents.GetByID)

	staff.POST("/payments", h.Payments.Create)
	staff.GET("/payments", h.Payments.List)
	staff.GET("/payments/:id", h.Payments.GetByID)

	staff.POST("/expenses", h.Expenses.Create)
	authed.GET("/expenses", h.Expenses.List)
	authed.GET("/expenses/:id", h.Expenses.GetByID)

	staff.POST("/notifications", h.Notifications.Create)
	authed.GET("/notifications", h.Notifications.ListMine)
	authed.GET("/notifications/unread-count", h.Notifications.UnreadCount)
	authed.POST("/notifications/:id/read", h.Notifications.MarkAsRead)
}
