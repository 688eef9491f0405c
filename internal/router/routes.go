package router

import (
	"github.com/changhyeonkim/project-board/go-api-server/internal/article"
	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
	"github.com/changhyeonkim/project-board/go-api-server/internal/meta"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/project-board/go-api-server/internal/useraccount"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	articleRepository := article.NewArticleRepository()
	userAccountRepository := useraccount.NewUserAccountRepository()

	// service
	articleService := article.NewArticleService(db.DB, articleRepository, userAccountRepository)

	// handler
	articleHandler := article.NewArticleHandler(articleService, cfg.Pagination)

	RegisterArticleRoutes(router, articleHandler)
}

// RegisterArticleRoutes mounts the board routes under /articles
func RegisterArticleRoutes(router gin.IRouter, articleHandler *article.ArticleHandler) {
	articles := router.Group("/articles")
	{
		articles.GET("", articleHandler.List)
		articles.GET("/search", articleHandler.Search)
		articles.GET("/search-hashtag", articleHandler.SearchHashtag)
		articles.GET("/:articleId", articleHandler.Get)
		articles.POST("", articleHandler.Create)
		articles.PATCH("/:articleId", articleHandler.Update)
		articles.DELETE("/:articleId", articleHandler.Delete)
	}
}
