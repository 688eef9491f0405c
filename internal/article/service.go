package article

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/project-board/go-api-server/internal/useraccount"
	"gorm.io/gorm"
)

type ArticleService struct {
	db                    *gorm.DB
	articleRepository     ArticleRepository
	userAccountRepository UserAccountRepository
}

func NewArticleService(db *gorm.DB, articleRepository ArticleRepository, userAccountRepository UserAccountRepository) *ArticleService {
	return &ArticleService{
		db:                    db,
		articleRepository:     articleRepository,
		userAccountRepository: userAccountRepository,
	}
}

// SearchArticles runs a keyword search on the field bound to searchType.
// A nil searchType or blank keyword lists every article.
func (s *ArticleService) SearchArticles(ctx context.Context, searchType *SearchType, keyword string, req pagination.Request) (pagination.Page[ArticleDto], error) {
	log := logger.FromContext(ctx)

	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (pagination.Page[ArticleDto], error) {
		var (
			page pagination.Page[model.Article]
			err  error
		)

		if searchType == nil || strings.TrimSpace(keyword) == "" {
			page, err = s.articleRepository.FindAll(ctx, tx, req)
		} else {
			switch *searchType {
			case SearchTypeTitle:
				page, err = s.articleRepository.FindByTitleContaining(ctx, tx, keyword, req)
			case SearchTypeContent:
				page, err = s.articleRepository.FindByContentContaining(ctx, tx, keyword, req)
			case SearchTypeHashtag:
				page, err = s.articleRepository.FindByHashtagContaining(ctx, tx, keyword, req)
			case SearchTypeUserID:
				page, err = s.articleRepository.FindByUserIDContaining(ctx, tx, keyword, req)
			case SearchTypeNickname:
				page, err = s.articleRepository.FindByNicknameContaining(ctx, tx, keyword, req)
			default:
				return pagination.Page[ArticleDto]{}, fmt.Errorf("searchType=%q: %w", *searchType, ErrUnsupportedSearchType)
			}
		}
		if err != nil {
			log.Error("게시글 검색 실패", "searchType", searchTypeName(searchType), "page", req.String(), "error", err)
			return pagination.Page[ArticleDto]{}, fmt.Errorf("search articles: %w", err)
		}

		return pagination.Map(page, toArticleDto), nil
	})
}

// SearchArticlesByPredicates ANDs one containment (or equality) predicate per filter.
// Blank values are skipped; no filters lists every article.
func (s *ArticleService) SearchArticlesByPredicates(ctx context.Context, filters map[string]string, req pagination.Request) (pagination.Page[ArticleDto], error) {
	log := logger.FromContext(ctx)

	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	predicates := make([]Predicate, 0, len(fields))
	for _, field := range fields {
		value := filters[field]
		if strings.TrimSpace(value) == "" {
			continue
		}
		predicate, err := BindPredicate(field, value)
		if err != nil {
			log.Warn("검색 조건 바인딩 실패", "field", field, "error", err)
			return pagination.Page[ArticleDto]{}, err
		}
		log.Debug("검색 조건", "field", predicate.Field(), "value", predicate.Value())
		predicates = append(predicates, predicate)
	}

	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (pagination.Page[ArticleDto], error) {
		var (
			page pagination.Page[model.Article]
			err  error
		)
		if len(predicates) == 0 {
			page, err = s.articleRepository.FindAll(ctx, tx, req)
		} else {
			page, err = s.articleRepository.FindAllByPredicates(ctx, tx, predicates, req)
		}
		if err != nil {
			log.Error("게시글 조건 검색 실패", "fields", fields, "page", req.String(), "error", err)
			return pagination.Page[ArticleDto]{}, fmt.Errorf("search articles by predicates: %w", err)
		}

		return pagination.Map(page, toArticleDto), nil
	})
}

// SearchArticlesViaHashtag matches the hashtag exactly. A blank hashtag yields an empty page.
func (s *ArticleService) SearchArticlesViaHashtag(ctx context.Context, hashtag string, req pagination.Request) (pagination.Page[ArticleDto], error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (pagination.Page[ArticleDto], error) {
		return s.searchViaHashtag(ctx, tx, hashtag, req)
	})
}

// SearchHashtagArticles reads the hashtag page and the hashtag list in one transaction
func (s *ArticleService) SearchHashtagArticles(ctx context.Context, hashtag string, req pagination.Request) (HashtagSearchDto, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (HashtagSearchDto, error) {
		articles, err := s.searchViaHashtag(ctx, tx, hashtag, req)
		if err != nil {
			return HashtagSearchDto{}, err
		}

		hashtags, err := s.listHashtags(ctx, tx)
		if err != nil {
			return HashtagSearchDto{}, err
		}

		return HashtagSearchDto{Articles: articles, Hashtags: hashtags}, nil
	})
}

func (s *ArticleService) GetArticle(ctx context.Context, articleID int64) (*ArticleWithCommentsDto, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*ArticleWithCommentsDto, error) {
		article, err := s.findArticle(ctx, tx, articleID)
		if err != nil {
			return nil, err
		}
		dto := NewArticleWithCommentsDto(article)
		return &dto, nil
	})
}

func (s *ArticleService) GetArticleDto(ctx context.Context, articleID int64) (*ArticleDto, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) (*ArticleDto, error) {
		article, err := s.findArticle(ctx, tx, articleID)
		if err != nil {
			return nil, err
		}
		dto := NewArticleDto(article)
		return &dto, nil
	})
}

// SaveArticle inserts a new article authored by dto.UserAccountDto.ID
func (s *ArticleService) SaveArticle(ctx context.Context, dto ArticleDto) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		article := dto.ToEntity()
		if err := s.articleRepository.Create(ctx, tx, article); err != nil {
			log.Error("게시글 저장 실패", "userAccountId", dto.UserAccountDto.ID, "error", err)
			return fmt.Errorf("save article: %w", err)
		}

		log.Info("게시글 저장 완료", "articleId", article.ID, "userAccountId", article.UserAccountID)
		return nil
	})
}

// UpdateArticle applies the non-nil fields of dto to the stored article.
// A missing article is logged and ignored.
func (s *ArticleService) UpdateArticle(ctx context.Context, articleID int64, dto ArticleUpdateDto) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		article, err := s.articleRepository.FindByID(ctx, tx, articleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("게시글 업데이트 실패 - 게시글을 찾을 수 없습니다", "articleId", articleID)
				return nil
			}
			log.Error("게시글 조회 실패", "articleId", articleID, "error", err)
			return fmt.Errorf("find article articleId=%d: %w", articleID, err)
		}

		dto.ApplyTo(article)
		if err := s.changeAuthor(ctx, tx, article, dto.UserAccountDto); err != nil {
			return err
		}

		if err := s.articleRepository.Update(ctx, tx, article); err != nil {
			log.Error("게시글 업데이트 실패", "articleId", articleID, "error", err)
			return fmt.Errorf("update article articleId=%d: %w", articleID, err)
		}

		log.Info("게시글 업데이트 완료", "articleId", articleID)
		return nil
	})
}

// DeleteArticle deletes by id; a missing id is a no-op
func (s *ArticleService) DeleteArticle(ctx context.Context, articleID int64) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.articleRepository.DeleteByID(ctx, tx, articleID); err != nil {
			log.Error("게시글 삭제 실패", "articleId", articleID, "error", err)
			return fmt.Errorf("delete article articleId=%d: %w", articleID, err)
		}

		log.Info("게시글 삭제 완료", "articleId", articleID)
		return nil
	})
}

// ListHashtags returns the distinct non-blank hashtags, trimmed and sorted
func (s *ArticleService) ListHashtags(ctx context.Context) ([]string, error) {
	return database.InTransaction(ctx, s.db, func(tx *gorm.DB) ([]string, error) {
		return s.listHashtags(ctx, tx)
	})
}

func (s *ArticleService) searchViaHashtag(ctx context.Context, tx *gorm.DB, hashtag string, req pagination.Request) (pagination.Page[ArticleDto], error) {
	hashtag = strings.TrimSpace(hashtag)
	if hashtag == "" {
		return pagination.Empty[ArticleDto](req), nil
	}

	page, err := s.articleRepository.FindByHashtag(ctx, tx, hashtag, req)
	if err != nil {
		logger.FromContext(ctx).Error("해시태그 검색 실패", "hashtag", hashtag, "error", err)
		return pagination.Page[ArticleDto]{}, fmt.Errorf("search articles via hashtag: %w", err)
	}
	return pagination.Map(page, toArticleDto), nil
}

func (s *ArticleService) listHashtags(ctx context.Context, tx *gorm.DB) ([]string, error) {
	stored, err := s.articleRepository.FindAllHashtags(ctx, tx)
	if err != nil {
		logger.FromContext(ctx).Error("해시태그 목록 조회 실패", "error", err)
		return nil, fmt.Errorf("list hashtags: %w", err)
	}

	seen := make(map[string]struct{}, len(stored))
	hashtags := make([]string, 0, len(stored))
	for _, h := range stored {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		hashtags = append(hashtags, h)
	}
	sort.Strings(hashtags)

	return hashtags, nil
}

func (s *ArticleService) findArticle(ctx context.Context, tx *gorm.DB, articleID int64) (*model.Article, error) {
	article, err := s.articleRepository.FindByID(ctx, tx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ArticleID: articleID}
		}
		logger.FromContext(ctx).Error("게시글 조회 실패", "articleId", articleID, "error", err)
		return nil, fmt.Errorf("find article articleId=%d: %w", articleID, err)
	}
	return article, nil
}

// changeAuthor switches the author when author names a different, existing user account
func (s *ArticleService) changeAuthor(ctx context.Context, tx *gorm.DB, article *model.Article, author *useraccount.UserAccountDto) error {
	if author == nil || author.UserID == "" || author.UserID == article.UserAccount.UserID {
		return nil
	}

	log := logger.FromContext(ctx)

	userAccount, err := s.userAccountRepository.FindByUserID(ctx, tx, author.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("작성자 변경 생략 - user account not found", "articleId", article.ID, "userId", author.UserID)
			return nil
		}
		log.Error("작성자 조회 실패", "userId", author.UserID, "error", err)
		return fmt.Errorf("find user account userId=%s: %w", author.UserID, err)
	}

	article.UserAccount = *userAccount
	article.UserAccountID = userAccount.ID
	log.Info("작성자 변경", "articleId", article.ID, "userId", userAccount.UserID, "email", logger.MaskEmail(userAccount.Email))
	return nil
}

func searchTypeName(searchType *SearchType) string {
	if searchType == nil {
		return ""
	}
	return string(*searchType)
}

func toArticleDto(article model.Article) ArticleDto {
	return NewArticleDto(&article)
}
