package routes

import (
	"log"

	"github.com/oshaberi-project/oshaberi_backend/internal/config"
	"github.com/oshaberi-project/oshaberi_backend/internal/controllers"
	"github.com/oshaberi-project/oshaberi_backend/internal/middlewares"
	"github.com/oshaberi-project/oshaberi_backend/internal/repository"
	"github.com/oshaberi-project/oshaberi_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	aiModelRepo := repository.NewAiModelRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// ストレージサービスを作成
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatalf("ストレージサービスの初期化に失敗しました: %v", err)
	}
	iconService, err := services.NewIconService(cfg)
	if err != nil {
		log.Fatalf("アイコンサービスの初期化に失敗しました: %v", err)
	}

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	aiModelService := services.NewAiModelService(aiModelRepo, storageService)
	commentService := services.NewCommentService(commentRepo, aiModelRepo)
	userService := services.NewUserService(userRepo, favoriteRepo, iconService)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	aiModelController := controllers.NewAiModelController(aiModelService)
	commentController := controllers.NewCommentController(commentService)
	userController := controllers.NewUserController(userService)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, authController.GetMe)
		}

		// AIモデルルート
		aimodels := api.Group("/aimodels")
		{
			// 認証不要
			aimodels.GET("", aiModelController.List)
			aimodels.GET("/:id", aiModelController.GetByID)
			aimodels.GET("/:id/comments", commentController.List)

			// 認証が必要
			aimodels.POST("", authMiddleware, aiModelController.Create)
			aimodels.PUT("/:id", authMiddleware, aiModelController.Update)
			aimodels.DELETE("/:id", authMiddleware, aiModelController.Delete)
			aimodels.POST("/:id/comments", authMiddleware, commentController.Create)
			aimodels.POST("/:id/favorite", authMiddleware, userController.RegisterFavorite)
			aimodels.DELETE("/:id/favorite", authMiddleware, userController.UnregisterFavorite)
		}

		// コメントルート
		comments := api.Group("/comments")
		{
			comments.PUT("/:id", authMiddleware, commentController.Update)
			comments.DELETE("/:id", authMiddleware, commentController.Delete)
		}

		// お気に入り一覧ルート
		api.GET("/favorites", authMiddleware, userController.Favorites)

		// ユーザールート
		users := api.Group("/users")
		{
			users.PUT("/profile", authMiddleware, userController.UpdateProfile)
			users.GET("/:id", userController.GetByID)
		}
	}

	return r
}
