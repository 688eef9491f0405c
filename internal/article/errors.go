package article

import (
	"fmt"
	"net/http"

	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
)

const (
	articleNotFound        = "ARTICLE_NOT_FOUND"        // errInfo
	unsupportedSearchField = "UNSUPPORTED_SEARCH_FIELD" // errInfo
	unsupportedSearchType  = "UNSUPPORTED_SEARCH_TYPE"  // errInfo
	invalidSearchValue     = "INVALID_SEARCH_VALUE"     // errInfo
)

var (
	ErrArticleNotFound        = sharedError.NewDomainError(articleNotFound)
	ErrUnsupportedSearchField = sharedError.NewDomainError(unsupportedSearchField)
	ErrUnsupportedSearchType  = sharedError.NewDomainError(unsupportedSearchType)
	ErrInvalidSearchValue     = sharedError.NewDomainError(invalidSearchValue)
)

// NotFoundError reports a missing article; it matches ErrArticleNotFound with errors.Is
type NotFoundError struct {
	ArticleID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("article not found - articleId: %d", e.ArticleID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}

func init() {
	sharedError.RegisterDomainErrorResponse(articleNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ARTICLE-001",
		Message: "게시글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(unsupportedSearchField, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ARTICLE-002",
		Message: "검색할 수 없는 항목입니다.",
	})

	sharedError.RegisterDomainErrorResponse(unsupportedSearchType, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ARTICLE-003",
		Message: "지원하지 않는 검색 유형입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidSearchValue, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ARTICLE-004",
		Message: "검색어 형식이 올바르지 않습니다.",
	})
}
