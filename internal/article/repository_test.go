package article_test

import (
	"context"
	"testing"
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/article"
	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/pagination"
	"github.com/changhyeonkim/project-board/go-api-server/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRepository(t *testing.T) (*article.GormArticleRepository, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	return article.NewArticleRepository(), db
}

func titlesOf(page pagination.Page[model.Article]) []string {
	titles := make([]string, 0, len(page.Content))
	for _, a := range page.Content {
		titles = append(titles, a.Title)
	}
	return titles
}

func TestArticleRepository_FindAll_Paginates(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	for _, title := range []string{"first", "second", "third"} {
		testutil.CreateArticle(t, db, author, title, "", nil)
	}
	ctx := context.Background()

	// When
	firstPage, err := repo.FindAll(ctx, db, pagination.Of(0, 2, pagination.Desc("id")))
	require.NoError(t, err)
	lastPage, err := repo.FindAll(ctx, db, pagination.Of(1, 2, pagination.Desc("id")))
	require.NoError(t, err)
	beyond, err := repo.FindAll(ctx, db, pagination.Of(5, 2, pagination.Desc("id")))
	require.NoError(t, err)

	// Then
	assert.Equal(t, []string{"third", "second"}, titlesOf(firstPage))
	assert.Equal(t, int64(3), firstPage.TotalElements)
	assert.Equal(t, 2, firstPage.TotalPages)
	assert.True(t, firstPage.First)
	assert.False(t, firstPage.Last)

	assert.Equal(t, []string{"first"}, titlesOf(lastPage))
	assert.True(t, lastPage.Last)

	assert.True(t, beyond.Empty)
	assert.Equal(t, int64(3), beyond.TotalElements)
}

func TestArticleRepository_FindAll_PreloadsAuthor(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "", "", nil)

	// When
	page, err := repo.FindAll(context.Background(), db, pagination.Of(0, 10))

	// Then
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, author.UserID, page.Content[0].UserAccount.UserID)
	assert.Equal(t, author.Nickname, page.Content[0].UserAccount.Nickname)
}

func TestArticleRepository_FindByTitleContaining_IgnoresCase(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "Hello Gopher", "", nil)
	testutil.CreateArticle(t, db, author, "gopher tips", "", nil)
	testutil.CreateArticle(t, db, author, "Rust", "", nil)

	// When
	page, err := repo.FindByTitleContaining(context.Background(), db, "GOPHER", pagination.Of(0, 10, pagination.Asc("id")))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello Gopher", "gopher tips"}, titlesOf(page))
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestArticleRepository_FindByTitleContaining_MatchesWildcardsLiterally(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "100% done", "", nil)
	testutil.CreateArticle(t, db, author, "1000 done", "", nil)
	testutil.CreateArticle(t, db, author, "snake_case", "", nil)
	testutil.CreateArticle(t, db, author, "snakeXcase", "", nil)
	testutil.CreateArticle(t, db, author, "wow!", "", nil)
	ctx := context.Background()
	req := pagination.Of(0, 10)

	testCases := []struct {
		keyword string
		want    []string
	}{
		{keyword: "0%", want: []string{"100% done"}},
		{keyword: "e_c", want: []string{"snake_case"}},
		{keyword: "w!", want: []string{"wow!"}},
	}

	for _, tc := range testCases {
		t.Run(tc.keyword, func(t *testing.T) {
			// When
			page, err := repo.FindByTitleContaining(ctx, db, tc.keyword, req)

			// Then
			require.NoError(t, err)
			assert.Equal(t, tc.want, titlesOf(page))
		})
	}
}

func TestArticleRepository_FindByContentContaining(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "a", "Goroutines are cheap", nil)
	testutil.CreateArticle(t, db, author, "b", "channels", nil)

	// When
	page, err := repo.FindByContentContaining(context.Background(), db, "goroutine", pagination.Of(0, 10))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titlesOf(page))
}

func TestArticleRepository_FindByUserIDAndNicknameContaining_JoinAuthor(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	alpha := testutil.NewUserAccount()
	alpha.UserID = "alpha-writer"
	alpha.Nickname = "Morning Person"
	testutil.CreateUserAccount(t, db, alpha)
	beta := testutil.NewUserAccount()
	beta.UserID = "beta-writer"
	beta.Nickname = "Night Owl"
	testutil.CreateUserAccount(t, db, beta)

	testutil.CreateArticle(t, db, alpha, "by alpha", "", nil)
	testutil.CreateArticle(t, db, beta, "by beta", "", nil)
	ctx := context.Background()
	req := pagination.Of(0, 10, pagination.Desc(article.FieldCreatedAt))

	// When
	byUserID, err := repo.FindByUserIDContaining(ctx, db, "ALPHA", req)
	require.NoError(t, err)
	byNickname, err := repo.FindByNicknameContaining(ctx, db, "owl", req)
	require.NoError(t, err)
	bothWriters, err := repo.FindByUserIDContaining(ctx, db, "writer", req)
	require.NoError(t, err)

	// Then
	assert.Equal(t, []string{"by alpha"}, titlesOf(byUserID))
	assert.Equal(t, "alpha-writer", byUserID.Content[0].UserAccount.UserID)
	assert.Equal(t, []string{"by beta"}, titlesOf(byNickname))
	assert.Equal(t, int64(2), bothWriters.TotalElements)
}

func TestArticleRepository_FindByHashtag_IsExact(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "java", "", testutil.Ptr("#java"))
	testutil.CreateArticle(t, db, author, "javascript", "", testutil.Ptr("#javascript"))
	testutil.CreateArticle(t, db, author, "none", "", nil)
	ctx := context.Background()
	req := pagination.Of(0, 10, pagination.Asc(article.FieldTitle))

	// When
	exact, err := repo.FindByHashtag(ctx, db, "#java", req)
	require.NoError(t, err)
	containing, err := repo.FindByHashtagContaining(ctx, db, "#JAVA", req)
	require.NoError(t, err)

	// Then
	assert.Equal(t, []string{"java"}, titlesOf(exact))
	assert.Equal(t, []string{"java", "javascript"}, titlesOf(containing))
}

func TestArticleRepository_FindAllByPredicates_CombinesWithAnd(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	alpha := testutil.NewUserAccount()
	alpha.Nickname = "Alpha"
	testutil.CreateUserAccount(t, db, alpha)
	beta := testutil.NewUserAccount()
	beta.Nickname = "Beta"
	testutil.CreateUserAccount(t, db, beta)

	testutil.CreateArticle(t, db, alpha, "go tips", "", nil)
	testutil.CreateArticle(t, db, alpha, "rust tips", "", nil)
	testutil.CreateArticle(t, db, beta, "go tricks", "", nil)

	title, err := article.BindPredicate(article.FieldTitle, "go")
	require.NoError(t, err)
	nickname, err := article.BindPredicate(article.FieldNickname, "alp")
	require.NoError(t, err)
	userID, err := article.BindPredicate(article.FieldUserID, alpha.UserID)
	require.NoError(t, err)

	// When: two predicates on the joined table must not join it twice
	page, err := repo.FindAllByPredicates(context.Background(), db, []article.Predicate{title, nickname, userID}, pagination.Of(0, 10))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"go tips"}, titlesOf(page))
}

func TestArticleRepository_FindAllByPredicates_CreatedAtEquals(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	created := testutil.CreateArticle(t, db, author, "target", "", nil)
	testutil.CreateArticle(t, db, author, "other", "", nil)

	stored, err := repo.FindByID(context.Background(), db, created.ID)
	require.NoError(t, err)

	createdAt, err := article.BindPredicate(article.FieldCreatedAt, stored.CreatedAt.Format(time.RFC3339Nano))
	require.NoError(t, err)

	// When
	page, err := repo.FindAllByPredicates(context.Background(), db, []article.Predicate{createdAt}, pagination.Of(0, 10))

	// Then
	require.NoError(t, err)
	require.NotEmpty(t, page.Content)
	assert.Contains(t, titlesOf(page), "target")
}

func TestArticleRepository_Sort(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "banana", "", nil)
	testutil.CreateArticle(t, db, author, "apple", "", nil)
	testutil.CreateArticle(t, db, author, "cherry", "", nil)
	ctx := context.Background()

	t.Run("by title ascending", func(t *testing.T) {
		page, err := repo.FindAll(ctx, db, pagination.Of(0, 10, pagination.Asc(article.FieldTitle)))
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "banana", "cherry"}, titlesOf(page))
	})

	t.Run("unsupported property", func(t *testing.T) {
		_, err := repo.FindAll(ctx, db, pagination.Of(0, 10, pagination.Asc(article.FieldContent)))
		assert.ErrorIs(t, err, pagination.ErrUnsupportedSortProperty)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := repo.FindAll(ctx, db, pagination.Of(0, 0))
		assert.ErrorIs(t, err, pagination.ErrInvalidPageRequest)
	})
}

func TestArticleRepository_FindByID(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	created := testutil.CreateArticle(t, db, author, "title", "content", testutil.Ptr("#java"))
	ctx := context.Background()

	// When
	found, err := repo.FindByID(ctx, db, created.ID)
	require.NoError(t, err)
	_, missingErr := repo.FindByID(ctx, db, created.ID+100)

	// Then
	assert.Equal(t, "title", found.Title)
	assert.Equal(t, "content", found.Content)
	assert.Equal(t, "#java", *found.Hashtag)
	assert.Equal(t, author.ID, found.UserAccount.ID)
	assert.ErrorIs(t, missingErr, gorm.ErrRecordNotFound)
}

func TestArticleRepository_Create_SetsAuditFields(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	a := model.NewArticle(author, "title", "content", nil)
	ctx := sharedContext.WithAuditor(context.Background(), "writer")

	// When
	err := repo.Create(ctx, db, a)

	// Then
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Equal(t, "writer", a.CreatedBy)
	assert.Equal(t, "writer", a.ModifiedBy)
	assert.False(t, a.CreatedAt.IsZero())
	assert.False(t, a.ModifiedAt.IsZero())
}

func TestArticleRepository_Create_WithoutAuditorUsesSystem(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	a := model.NewArticle(author, "title", "content", nil)

	// When
	err := repo.Create(context.Background(), db, a)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "system", a.CreatedBy)
}

func TestArticleRepository_Update_KeepsCreationAudit(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	created := testutil.CreateArticle(t, db, author, "title", "content", testutil.Ptr("#java"))
	ctx := sharedContext.WithAuditor(context.Background(), "editor")

	loaded, err := repo.FindByID(ctx, db, created.ID)
	require.NoError(t, err)
	loaded.Title = "새 타이틀"
	loaded.Hashtag = nil

	// When
	err = repo.Update(ctx, db, loaded)
	require.NoError(t, err)

	// Then
	reloaded, err := repo.FindByID(ctx, db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "새 타이틀", reloaded.Title)
	assert.Equal(t, "content", reloaded.Content)
	assert.Nil(t, reloaded.Hashtag)
	assert.Equal(t, testutil.TestAuditor, reloaded.CreatedBy)
	assert.Equal(t, "editor", reloaded.ModifiedBy)
	assert.True(t, reloaded.CreatedAt.Equal(created.CreatedAt))
	assert.False(t, reloaded.ModifiedAt.Before(created.ModifiedAt))
}

func TestArticleRepository_DeleteByID(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	created := testutil.CreateArticle(t, db, author, "", "", nil)
	ctx := context.Background()

	// When
	require.NoError(t, repo.DeleteByID(ctx, db, created.ID))
	missingErr := repo.DeleteByID(ctx, db, created.ID)

	// Then
	assert.NoError(t, missingErr)
	_, err := repo.FindByID(ctx, db, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleRepository_FindAllHashtags_Distinct(t *testing.T) {
	// Given
	repo, db := setupRepository(t)
	author := testutil.CreateUserAccount(t, db, nil)
	testutil.CreateArticle(t, db, author, "", "", testutil.Ptr("#java"))
	testutil.CreateArticle(t, db, author, "", "", testutil.Ptr("#java"))
	testutil.CreateArticle(t, db, author, "", "", testutil.Ptr("#go"))
	testutil.CreateArticle(t, db, author, "", "", nil)

	// When
	hashtags, err := repo.FindAllHashtags(context.Background(), db)

	// Then
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"#java", "#go"}, hashtags)
}
