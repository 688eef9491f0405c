package article

import (
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/project-board/go-api-server/internal/useraccount"
)

// Query parameter names
const (
	SearchTypeParam  = "searchType"
	SearchValueParam = "searchValue"
)

type SaveArticleRequest struct {
	UserAccountID int64   `json:"userAccountId" binding:"required,gte=1"`
	Title         string  `json:"title" binding:"required,notblank,max=255"`
	Content       string  `json:"content" binding:"required,notblank,max=10000"`
	Hashtag       *string `json:"hashtag" binding:"omitempty,max=255"`
}

func (r SaveArticleRequest) ToDto() ArticleDto {
	return ArticleDto{
		UserAccountDto: useraccount.UserAccountDto{ID: r.UserAccountID},
		Title:          r.Title,
		Content:        r.Content,
		Hashtag:        r.Hashtag,
	}
}

// UpdateArticleRequest is a partial update. An empty hashtag clears it.
type UpdateArticleRequest struct {
	Title   *string `json:"title" binding:"omitempty,notblank,max=255"`
	Content *string `json:"content" binding:"omitempty,notblank,max=10000"`
	Hashtag *string `json:"hashtag" binding:"omitempty,max=255"`
	UserID  *string `json:"userId" binding:"omitempty,notblank,max=50"`
}

func (r UpdateArticleRequest) ToDto() ArticleUpdateDto {
	dto := ArticleUpdateDto{
		Title:   r.Title,
		Content: r.Content,
		Hashtag: r.Hashtag,
	}
	if r.UserID != nil {
		dto.UserAccountDto = &useraccount.UserAccountDto{UserID: *r.UserID}
	}
	return dto
}

type SearchTypeResponse struct {
	Name        SearchType `json:"name"`
	Description string     `json:"description"`
}

type ArticlesResponse struct {
	Articles    pagination.Page[ArticleDto] `json:"articles"`
	SearchTypes []SearchTypeResponse        `json:"searchTypes"`
}

type HashtagArticlesResponse struct {
	Articles pagination.Page[ArticleDto] `json:"articles"`
	Hashtags []string                    `json:"hashtags"`
}

func searchTypeResponses() []SearchTypeResponse {
	responses := make([]SearchTypeResponse, 0, len(SearchTypes))
	for _, t := range SearchTypes {
		responses = append(responses, SearchTypeResponse{Name: t, Description: t.Description()})
	}
	return responses
}
