package article

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/changhyeonkim/project-board/go-api-server/internal/config"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"github.com/gin-gonic/gin"
)

const articleIDParam = "articleId"

type ArticleHandler struct {
	articleService *ArticleService
	pageConfig     config.PaginationConfig
}

func NewArticleHandler(articleService *ArticleService, pageConfig config.PaginationConfig) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		pageConfig:     pageConfig,
	}
}

// List handles GET /articles?searchType=TITLE&searchValue=...&page=0&size=10&sort=createdAt,desc
func (h *ArticleHandler) List(c *gin.Context) {
	pageRequest, ok := h.pageRequest(c)
	if !ok {
		return
	}

	var searchType *SearchType
	if raw := strings.TrimSpace(c.Query(SearchTypeParam)); raw != "" {
		parsed, err := ParseSearchType(raw)
		if err != nil {
			handler.RespondDomainError(c, err)
			return
		}
		searchType = &parsed
	}

	articles, err := h.articleService.SearchArticles(c.Request.Context(), searchType, c.Query(SearchValueParam), pageRequest)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticlesResponse{
		Articles:    articles,
		SearchTypes: searchTypeResponses(),
	})
}

// Search handles GET /articles/search?title=...&userId=...
// Every query key other than page, size and sort is a search field.
func (h *ArticleHandler) Search(c *gin.Context) {
	pageRequest, ok := h.pageRequest(c)
	if !ok {
		return
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		switch key {
		case pagination.PageParam, pagination.SizeParam, pagination.SortParam:
			continue
		}
		if !slices.Contains(SearchableFields(), key) {
			handler.RespondDomainError(c, fmt.Errorf("field=%q: %w", key, ErrUnsupportedSearchField))
			return
		}
		if len(values) > 1 {
			handler.RespondDomainError(c, fmt.Errorf("field=%q repeated: %w", key, ErrInvalidSearchValue))
			return
		}
		filters[key] = values[0]
	}

	articles, err := h.articleService.SearchArticlesByPredicates(c.Request.Context(), filters, pageRequest)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, ArticlesResponse{
		Articles:    articles,
		SearchTypes: searchTypeResponses(),
	})
}

// SearchHashtag handles GET /articles/search-hashtag?searchValue=#java
func (h *ArticleHandler) SearchHashtag(c *gin.Context) {
	pageRequest, ok := h.pageRequest(c)
	if !ok {
		return
	}

	result, err := h.articleService.SearchHashtagArticles(c.Request.Context(), c.Query(SearchValueParam), pageRequest)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, HashtagArticlesResponse{
		Articles: result.Articles,
		Hashtags: result.Hashtags,
	})
}

func (h *ArticleHandler) Get(c *gin.Context) {
	articleID, ok := handler.PathID(c, articleIDParam)
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var request SaveArticleRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.articleService.SaveArticle(c.Request.Context(), request.ToDto()); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{})
}

func (h *ArticleHandler) Update(c *gin.Context) {
	articleID, ok := handler.PathID(c, articleIDParam)
	if !ok {
		return
	}

	var request UpdateArticleRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	if err := h.articleService.UpdateArticle(c.Request.Context(), articleID, request.ToDto()); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, ok := handler.PathID(c, articleIDParam)
	if !ok {
		return
	}

	if err := h.articleService.DeleteArticle(c.Request.Context(), articleID); err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) pageRequest(c *gin.Context) (pagination.Request, bool) {
	pageRequest, err := pagination.FromQuery(c, h.pageConfig, pagination.Desc(FieldCreatedAt))
	if err != nil {
		handler.RespondDomainError(c, err)
		return pagination.Request{}, false
	}
	return pageRequest, true
}
