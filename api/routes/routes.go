package routes

import (
	"net/http"
	"time"

	"github.com/SubrotoKumar7/article-arena-server/internal/config"
	"github.com/SubrotoKumar7/article-arena-server/internal/handlers"
	"github.com/SubrotoKumar7/article-arena-server/internal/middleware"
	"github.com/SubrotoKumar7/article-arena-server/internal/models"
	"github.com/SubrotoKumar7/article-arena-server/internal/repositories"
	"github.com/SubrotoKumar7/article-arena-server/pkg/identity"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies carries everything SetupRouter wires into the route table
type HandlerDependencies struct {
	UserHandler       *handlers.UserHandler
	ContestHandler    *handlers.ContestHandler
	PaymentHandler    *handlers.PaymentHandler
	SubmissionHandler *handlers.SubmissionHandler
	WinnerHandler     *handlers.WinnerHandler

	Verifier identity.Verifier
	UserRepo repositories.UserRepository
}

// SetupRouter builds the route table. Three tiers: public, authenticated
// (verified bearer token) and role-gated (creator or admin on top of
// authentication).
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "article arena server is running"})
	})

	// Public routes
	router.POST("/users", deps.UserHandler.Register)
	router.GET("/users/:email/role", deps.UserHandler.GetRole)
	router.GET("/contests/approved", deps.ContestHandler.GetApproved)
	router.GET("/contests/popular", deps.ContestHandler.GetPopular)
	router.GET("/contests/:id", deps.ContestHandler.GetByID)
	router.GET("/winners/recent", deps.WinnerHandler.GetRecent)
	router.GET("/leaderboard", deps.WinnerHandler.Leaderboard)

	// Authenticated routes
	authed := router.Group("", middleware.Authenticate(deps.Verifier))
	{
		authed.POST("/payments/checkout", deps.PaymentHandler.CreateCheckout)
		authed.PATCH("/payments/success", deps.PaymentHandler.ReconcileSuccess)
		authed.GET("/payments/mine", deps.PaymentHandler.GetMine)
		authed.GET("/participants/mine", deps.PaymentHandler.GetJoined)
		authed.POST("/submissions", deps.SubmissionHandler.Submit)
		authed.GET("/stats/mine", deps.WinnerHandler.MyStats)
		authed.DELETE("/contests/:id", deps.ContestHandler.Delete)
	}

	// Creator routes
	creator := authed.Group("", middleware.RequireRole(deps.UserRepo, models.RoleCreator))
	{
		creator.POST("/contests", deps.ContestHandler.Create)
		creator.GET("/contests/mine", deps.ContestHandler.GetMine)
		creator.PATCH("/contests/:id", deps.ContestHandler.Update)
		creator.GET("/contests/:id/submissions", deps.SubmissionHandler.GetByContest)
		creator.POST("/contests/:id/winner", deps.WinnerHandler.Declare)
	}

	// Admin routes
	admin := authed.Group("", middleware.RequireRole(deps.UserRepo, models.RoleAdmin))
	{
		admin.GET("/users", deps.UserHandler.GetAll)
		admin.PATCH("/users/role", deps.UserHandler.UpdateRole)
		admin.GET("/contests", deps.ContestHandler.GetAll)
		admin.PATCH("/contests/:id/status", deps.ContestHandler.Resolve)
	}

	return router
}
