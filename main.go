package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zealr3/stackit-qna/config"
	"github.com/zealr3/stackit-qna/handlers"
	"github.com/zealr3/stackit-qna/helper"
	"github.com/zealr3/stackit-qna/middleware"
	"github.com/zealr3/stackit-qna/repositories"
	"github.com/zealr3/stackit-qna/services"
	"github.com/zealr3/stackit-qna/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize storage
	st, err := store.Open(config.StoragePath())
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	// Initialize repositories
	userRepo, err := repositories.NewUserRepository(st)
	if err != nil {
		log.Fatalf("failed to load users: %v", err)
	}
	questionRepo, err := repositories.NewQuestionRepository(st)
	if err != nil {
		log.Fatalf("failed to load questions: %v", err)
	}
	answerRepo, err := repositories.NewAnswerRepository(st)
	if err != nil {
		log.Fatalf("failed to load answers: %v", err)
	}
	tagRepo, err := repositories.NewTagRepository(st)
	if err != nil {
		log.Fatalf("failed to load tags: %v", err)
	}
	voteRepo, err := repositories.NewVoteRepository(st)
	if err != nil {
		log.Fatalf("failed to load votes: %v", err)
	}
	bookmarkRepo, err := repositories.NewBookmarkRepository(st)
	if err != nil {
		log.Fatalf("failed to load bookmarks: %v", err)
	}
	notificationRepo, err := repositories.NewNotificationRepository(st)
	if err != nil {
		log.Fatalf("failed to load notifications: %v", err)
	}
	reportRepo, err := repositories.NewReportRepository(st)
	if err != nil {
		log.Fatalf("failed to load reports: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo, answerRepo, tagRepo, userRepo, voteRepo, bookmarkRepo)
	answerService := services.NewAnswerService(questionRepo, answerRepo, userRepo, notificationRepo)
	voteService := services.NewVoteService(questionRepo, answerRepo, voteRepo, notificationRepo)
	tagService := services.NewTagService(tagRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	adminService := services.NewAdminService(userRepo, questionRepo, answerRepo, tagRepo, voteRepo, bookmarkRepo, reportRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	questionHandler := handlers.NewQuestionHandler(questionService, httpHelper)
	answerHandler := handlers.NewAnswerHandler(answerService, httpHelper)
	voteHandler := handlers.NewVoteHandler(voteService, httpHelper)
	tagHandler := handlers.NewTagHandler(tagService, httpHelper)
	notificationHandler := handlers.NewNotificationHandler(notificationService, httpHelper)
	adminHandler := handlers.NewAdminHandler(adminService, httpHelper)

	router := setupRouter(authHandler, questionHandler, answerHandler, voteHandler, tagHandler, notificationHandler, adminHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func setupRouter(
	authHandler *handlers.AuthHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
	voteHandler *handlers.VoteHandler,
	tagHandler *handlers.TagHandler,
	notificationHandler *handlers.NotificationHandler,
	adminHandler *handlers.AdminHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Browse routes: open to everyone, a valid token only adds the
		// viewer's vote and bookmark state to the payload.
		browse := v1.Group("/")
		browse.Use(middleware.OptionalAuthMiddleware())
		{
			browse.GET("/questions", questionHandler.GetQuestions)
			browse.GET("/questions/:id", questionHandler.GetQuestion)
			browse.GET("/tags", tagHandler.GetTags)
			browse.GET("/tags/:id", tagHandler.GetTag)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			// Questions and answers
			protected.POST("/questions", questionHandler.CreateQuestion)
			protected.POST("/questions/:id/answers", answerHandler.CreateAnswer)
			protected.POST("/questions/:id/answers/:answer_id/accept", answerHandler.AcceptAnswer)
			protected.POST("/questions/:id/vote", voteHandler.VoteQuestion)
			protected.POST("/questions/:id/bookmark", questionHandler.ToggleBookmark)
			protected.POST("/answers/:id/vote", voteHandler.VoteAnswer)

			// Tags
			protected.POST("/tags", tagHandler.CreateTag)

			// Notifications
			protected.GET("/notifications", notificationHandler.GetNotifications)
			protected.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			protected.PUT("/notifications/read-all", notificationHandler.MarkAllRead)

			// Reports
			protected.POST("/reports", adminHandler.CreateReport)

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/users", adminHandler.GetUsers)
				admin.PUT("/users/:id/role", adminHandler.ChangeRole)
				admin.DELETE("/questions/:id", adminHandler.DeleteQuestion)
				admin.DELETE("/answers/:id", adminHandler.DeleteAnswer)
				admin.GET("/reports", adminHandler.GetReports)
				admin.PUT("/reports/:id/status", adminHandler.UpdateReportStatus)
			}
		}
	}

	return router
}
