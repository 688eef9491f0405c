package article

import (
	"strings"
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/project-board/go-api-server/internal/useraccount"
)

type ArticleDto struct {
	ID             int64                      `json:"id"`
	UserAccountDto useraccount.UserAccountDto `json:"userAccount"`
	Title          string                     `json:"title"`
	Content        string                     `json:"content"`
	Hashtag        *string                    `json:"hashtag"`
	CreatedAt      time.Time                  `json:"createdAt"`
	CreatedBy      string                     `json:"createdBy"`
	ModifiedAt     time.Time                  `json:"modifiedAt"`
	ModifiedBy     string                     `json:"modifiedBy"`
}

// ArticleCommentDto is the comment snapshot carried by ArticleWithCommentsDto.
// Comments are not stored yet, so the list is always empty.
type ArticleCommentDto struct {
	ID             int64                      `json:"id"`
	ArticleID      int64                      `json:"articleId"`
	UserAccountDto useraccount.UserAccountDto `json:"userAccount"`
	Content        string                     `json:"content"`
	CreatedAt      time.Time                  `json:"createdAt"`
	CreatedBy      string                     `json:"createdBy"`
	ModifiedAt     time.Time                  `json:"modifiedAt"`
	ModifiedBy     string                     `json:"modifiedBy"`
}

type ArticleWithCommentsDto struct {
	ID                 int64                      `json:"id"`
	UserAccountDto     useraccount.UserAccountDto `json:"userAccount"`
	ArticleCommentDtos []ArticleCommentDto        `json:"articleComments"`
	Title              string                     `json:"title"`
	Content            string                     `json:"content"`
	Hashtag            *string                    `json:"hashtag"`
	CreatedAt          time.Time                  `json:"createdAt"`
	CreatedBy          string                     `json:"createdBy"`
	ModifiedAt         time.Time                  `json:"modifiedAt"`
	ModifiedBy         string                     `json:"modifiedBy"`
}

// ArticleUpdateDto is a partial update; nil fields keep the stored value.
// A non-nil blank Hashtag clears the hashtag.
type ArticleUpdateDto struct {
	Title          *string
	Content        *string
	Hashtag        *string
	UserAccountDto *useraccount.UserAccountDto // author change, matched by UserID
}

// HashtagSearchDto is a hashtag page together with every hashtag, read from one snapshot
type HashtagSearchDto struct {
	Articles pagination.Page[ArticleDto]
	Hashtags []string
}

func NewArticleDto(entity *model.Article) ArticleDto {
	return ArticleDto{
		ID:             entity.ID,
		UserAccountDto: useraccount.NewUserAccountDto(&entity.UserAccount),
		Title:          entity.Title,
		Content:        entity.Content,
		Hashtag:        copyString(entity.Hashtag),
		CreatedAt:      entity.CreatedAt,
		CreatedBy:      entity.CreatedBy,
		ModifiedAt:     entity.ModifiedAt,
		ModifiedBy:     entity.ModifiedBy,
	}
}

func NewArticleWithCommentsDto(entity *model.Article) ArticleWithCommentsDto {
	return ArticleWithCommentsDto{
		ID:                 entity.ID,
		UserAccountDto:     useraccount.NewUserAccountDto(&entity.UserAccount),
		ArticleCommentDtos: []ArticleCommentDto{},
		Title:              entity.Title,
		Content:            entity.Content,
		Hashtag:            copyString(entity.Hashtag),
		CreatedAt:          entity.CreatedAt,
		CreatedBy:          entity.CreatedBy,
		ModifiedAt:         entity.ModifiedAt,
		ModifiedBy:         entity.ModifiedBy,
	}
}

// ToEntity builds a new article referencing the persisted author d.UserAccountDto.ID.
// Only author, title, content and hashtag are taken; id and audit fields belong to the store.
func (d ArticleDto) ToEntity() *model.Article {
	author := d.UserAccountDto.ToEntity()
	author.ID = d.UserAccountDto.ID
	return model.NewArticle(author, d.Title, d.Content, normalizeHashtag(d.Hashtag))
}

// ApplyTo overwrites title, content and hashtag in place for every non-nil field
func (d ArticleUpdateDto) ApplyTo(entity *model.Article) {
	if d.Title != nil {
		entity.Title = *d.Title
	}
	if d.Content != nil {
		entity.Content = *d.Content
	}
	if d.Hashtag != nil {
		entity.Hashtag = normalizeHashtag(d.Hashtag)
	}
}

// normalizeHashtag trims the hashtag; blank becomes nil
func normalizeHashtag(hashtag *string) *string {
	if hashtag == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*hashtag)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
