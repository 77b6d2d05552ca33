package routes

import (
	"github.com/rdSoftInc/DevConnect/internal/config"
	"github.com/rdSoftInc/DevConnect/internal/controllers"
	"github.com/rdSoftInc/DevConnect/internal/middlewares"
	"github.com/rdSoftInc/DevConnect/internal/repository"
	"github.com/rdSoftInc/DevConnect/internal/services"
	"github.com/rdSoftInc/DevConnect/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and controllers onto a gin engine
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// ErrorMiddleware is the only panic handler
	r.Use(gin.Logger())
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	tokens := utils.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)

	// services
	authService := services.NewAuthService(userRepo, tokens, cfg.Auth.BcryptCost, nil)
	profileService := services.NewProfileService(profileRepo, userRepo, nil)
	postService := services.NewPostService(postRepo, userRepo, nil)
	githubService := services.NewGithubService(cfg.GitHub, nil)
	healthService := services.NewHealthService(sqlDB, cfg.Server.Version)

	// controllers
	authController := controllers.NewAuthController(authService)
	userController := controllers.NewUserController(authService)
	profileController := controllers.NewProfileController(profileService, githubService)
	postController := controllers.NewPostController(postService)
	healthController := controllers.NewHealthController(healthService)

	authMiddleware := middlewares.AuthMiddleware(tokens)

	api := r.Group("/api")
	{
		api.GET("/health", healthController.Check)

		api.POST("/users", userController.Register)
		api.POST("/user", userController.Register)

		auth := api.Group("/auth")
		{
			auth.POST("", authController.Login)
			auth.GET("", authMiddleware, authController.GetMe)
		}

		profile := api.Group("/profile")
		{
			// public
			profile.GET("", profileController.List)
			profile.GET("/user/:user_id", profileController.GetByUserID)
			profile.GET("/github/:username", profileController.GithubRepos)

			// caller's own profile
			profile.GET("/me", authMiddleware, profileController.Me)
			profile.POST("", authMiddleware, profileController.Upsert)
			profile.DELETE("", authMiddleware, profileController.Delete)
			profile.PUT("/experience", authMiddleware, profileController.AddExperience)
			profile.DELETE("/experience/:exp_id", authMiddleware, profileController.RemoveExperience)
			profile.PUT("/education", authMiddleware, profileController.AddEducation)
			profile.DELETE("/education/:edu_id", authMiddleware, profileController.RemoveEducation)
		}

		posts := api.Group("/posts", authMiddleware)
		{
			posts.POST("", postController.Create)
			posts.GET("", postController.List)
			posts.GET("/:id", postController.GetByID)
			posts.DELETE("/:id", postController.Delete)
			posts.PUT("/like/:id", postController.Like)
			posts.PUT("/unlike/:id", postController.Unlike)
			posts.POST("/comment/:id", postController.AddComment)
			posts.DELETE("/comment/:id/:comment_id", postController.RemoveComment)
		}
	}

	return r, nil
}
