package article

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleRepository is the persistence boundary of the board.
// Every method takes the handle to run on so the service can pass a transaction.
type ArticleRepository interface {
	FindAll(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[model.Article], error)
	FindByTitleContaining(ctx context.Context, db *gorm.DB, title string, req pagination.Request) (pagination.Page[model.Article], error)
	FindByContentContaining(ctx context.Context, db *gorm.DB, content string, req pagination.Request) (pagination.Page[model.Article], error)
	FindByHashtagContaining(ctx context.Context, db *gorm.DB, hashtag string, req pagination.Request) (pagination.Page[model.Article], error)
	FindByUserIDContaining(ctx context.Context, db *gorm.DB, userID string, req pagination.Request) (pagination.Page[model.Article], error)
	FindByNicknameContaining(ctx context.Context, db *gorm.DB, nickname string, req pagination.Request) (pagination.Page[model.Article], error)
	FindByHashtag(ctx context.Context, db *gorm.DB, hashtag string, req pagination.Request) (pagination.Page[model.Article], error)
	FindAllByPredicates(ctx context.Context, db *gorm.DB, predicates []Predicate, req pagination.Request) (pagination.Page[model.Article], error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.Article, error)
	FindAllHashtags(ctx context.Context, db *gorm.DB) ([]string, error)
	Create(ctx context.Context, db *gorm.DB, article *model.Article) error
	Update(ctx context.Context, db *gorm.DB, article *model.Article) error
	DeleteByID(ctx context.Context, db *gorm.DB, id int64) error
}

// UserAccountRepository is the part of the account store the board needs
type UserAccountRepository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserAccount, error)
}

// articleSortColumns allow-lists sortable properties. content is a CLOB on Oracle and cannot be ordered.
var articleSortColumns = pagination.SortColumns{
	"id":           articleColumn("id"),
	FieldTitle:     articleColumn("title"),
	FieldHashtag:   articleColumn("hashtag"),
	FieldCreatedAt: articleColumn("created_at"),
	FieldCreatedBy: articleColumn("created_by"),
	"modifiedAt":   articleColumn("modified_at"),
	"modifiedBy":   articleColumn("modified_by"),
}

// columns written by Update; modified_at is added by gorm's autoUpdateTime
var updatableColumns = []string{"title", "content", "hashtag", "user_account_id", "modified_by"}

type GormArticleRepository struct{}

func NewArticleRepository() *GormArticleRepository {
	return &GormArticleRepository{}
}

var _ ArticleRepository = (*GormArticleRepository)(nil)

func (r *GormArticleRepository) FindAll(ctx context.Context, db *gorm.DB, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req)
}

func (r *GormArticleRepository) FindByTitleContaining(ctx context.Context, db *gorm.DB, title string, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, mustBindPredicate(FieldTitle, title))
}

func (r *GormArticleRepository) FindByContentContaining(ctx context.Context, db *gorm.DB, content string, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, mustBindPredicate(FieldContent, content))
}

func (r *GormArticleRepository) FindByHashtagContaining(ctx context.Context, db *gorm.DB, hashtag string, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, mustBindPredicate(FieldHashtag, hashtag))
}

func (r *GormArticleRepository) FindByUserIDContaining(ctx context.Context, db *gorm.DB, userID string, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, mustBindPredicate(FieldUserID, userID))
}

func (r *GormArticleRepository) FindByNicknameContaining(ctx context.Context, db *gorm.DB, nickname string, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, mustBindPredicate(FieldNickname, nickname))
}

// FindByHashtag matches the hashtag exactly, bypassing the search bindings
func (r *GormArticleRepository) FindByHashtag(ctx context.Context, db *gorm.DB, hashtag string, req pagination.Request) (pagination.Page[model.Article], error) {
	exact := func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: articleColumn("hashtag"), Value: hashtag})
	}
	return r.paginate(ctx, db, req, exact)
}

func (r *GormArticleRepository) FindAllByPredicates(ctx context.Context, db *gorm.DB, predicates []Predicate, req pagination.Request) (pagination.Page[model.Article], error) {
	return r.findPage(ctx, db, req, predicates...)
}

func (r *GormArticleRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*model.Article, error) {
	var article model.Article
	err := db.WithContext(ctx).
		Preload("UserAccount").
		Where("id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAllHashtags returns the distinct stored hashtags as-is (untrimmed)
func (r *GormArticleRepository) FindAllHashtags(ctx context.Context, db *gorm.DB) ([]string, error) {
	var hashtags []string
	err := db.WithContext(ctx).
		Model(&model.Article{}).
		Where("hashtag IS NOT NULL").
		Distinct().
		Pluck("hashtag", &hashtags).Error
	if err != nil {
		return nil, err
	}
	return hashtags, nil
}

// Create inserts the article only; the referenced account is never upserted
func (r *GormArticleRepository) Create(ctx context.Context, db *gorm.DB, article *model.Article) error {
	return db.WithContext(ctx).Omit(clause.Associations).Create(article).Error
}

// Update writes back the mutable columns of an already loaded article
func (r *GormArticleRepository) Update(ctx context.Context, db *gorm.DB, article *model.Article) error {
	return db.WithContext(ctx).
		Model(article).
		Select(updatableColumns).
		Omit(clause.Associations).
		Updates(article).Error
}

// DeleteByID deletes by primary key; a missing id affects zero rows and is not an error
func (r *GormArticleRepository) DeleteByID(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Delete(&model.Article{}, id).Error
}

func (r *GormArticleRepository) findPage(ctx context.Context, db *gorm.DB, req pagination.Request, predicates ...Predicate) (pagination.Page[model.Article], error) {
	return r.paginate(ctx, db, req, withPredicates(predicates))
}

func (r *GormArticleRepository) paginate(ctx context.Context, db *gorm.DB, req pagination.Request, filter func(*gorm.DB) *gorm.DB) (pagination.Page[model.Article], error) {
	pageScope, err := pagination.Scope(req, articleSortColumns)
	if err != nil {
		return pagination.Page[model.Article]{}, err
	}

	var total int64
	err = db.WithContext(ctx).
		Model(&model.Article{}).
		Scopes(filter).
		Count(&total).Error
	if err != nil {
		return pagination.Page[model.Article]{}, err
	}

	var articles []model.Article
	if total > int64(req.Offset()) {
		err = db.WithContext(ctx).
			Model(&model.Article{}).
			Scopes(filter, pageScope).
			Preload("UserAccount").
			Find(&articles).Error
		if err != nil {
			return pagination.Page[model.Article]{}, err
		}
	}

	return pagination.NewPage(articles, req, total), nil
}
