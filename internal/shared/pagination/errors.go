package pagination

import (
	"net/http"

	sharedError "github.com/changhyeonkim/project-board/go-api-server/internal/shared/error"
)

const (
	invalidPageRequest      = "INVALID_PAGE_REQUEST"      // errInfo
	unsupportedSortProperty = "UNSUPPORTED_SORT_PROPERTY" // errInfo
)

var (
	ErrInvalidPageRequest      = sharedError.NewDomainError(invalidPageRequest)
	ErrUnsupportedSortProperty = sharedError.NewDomainError(unsupportedSortProperty)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidPageRequest, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PAGE-001",
		Message: "페이지 요청 형식이 올바르지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(unsupportedSortProperty, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "PAGE-002",
		Message: "정렬할 수 없는 항목입니다.",
	})
}
