package article

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchType(t *testing.T) {
	testCases := []struct {
		input string
		want  SearchType
	}{
		{input: "TITLE", want: SearchTypeTitle},
		{input: "content", want: SearchTypeContent},
		{input: " hashtag ", want: SearchTypeHashtag},
		{input: "User_Id", want: SearchTypeUserID},
		{input: "NICKNAME", want: SearchTypeNickname},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseSearchType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseSearchType("EMAIL")
		assert.ErrorIs(t, err, ErrUnsupportedSearchType)
	})
}

func TestSearchTypes_AreAllBound(t *testing.T) {
	for _, st := range SearchTypes {
		binding, ok := searchBindings[st.Field()]
		assert.True(t, ok, "search type %s", st)
		assert.Equal(t, containsIgnoreCase, binding.operator, "search type %s", st)
		assert.NotEmpty(t, st.Description())
	}
}

func TestSearchableFields_MatchBindings(t *testing.T) {
	fields := SearchableFields()
	assert.Len(t, fields, len(searchBindings))
	for _, field := range fields {
		_, ok := searchBindings[field]
		assert.True(t, ok, field)
	}
}

func TestBindPredicate(t *testing.T) {
	t.Run("keeps string value as given", func(t *testing.T) {
		p, err := BindPredicate(FieldTitle, "Go")
		require.NoError(t, err)
		assert.Equal(t, FieldTitle, p.Field())
		assert.Equal(t, "Go", p.Value())
	})

	t.Run("author fields need the join", func(t *testing.T) {
		p, err := BindPredicate(FieldNickname, "uno")
		require.NoError(t, err)
		assert.True(t, p.binding.joinUserAccount)
		assert.Equal(t, userAccountTable, p.binding.column.Table)
	})

	t.Run("createdAt parses to UTC", func(t *testing.T) {
		p, err := BindPredicate(FieldCreatedAt, "2024-01-02T12:00:00+09:00")
		require.NoError(t, err)
		got, ok := p.Value().(time.Time)
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)))
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("createdAt rejects malformed value", func(t *testing.T) {
		_, err := BindPredicate(FieldCreatedAt, "2024-01-02")
		assert.ErrorIs(t, err, ErrInvalidSearchValue)
	})

	t.Run("unknown field", func(t *testing.T) {
		for _, field := range []string{"userPassword", "email", "Title", "article.title", ""} {
			_, err := BindPredicate(field, "x")
			assert.ErrorIs(t, err, ErrUnsupportedSearchField, field)
		}
	})
}

func TestContainsPattern(t *testing.T) {
	testCases := []struct {
		keyword string
		want    string
	}{
		{keyword: "Gopher", want: "%gopher%"},
		{keyword: "100%", want: "%100!%%"},
		{keyword: "snake_case", want: "%snake!_case%"},
		{keyword: "wow!", want: "%wow!!%"},
		{keyword: "", want: "%%"},
	}

	for _, tc := range testCases {
		t.Run(tc.keyword, func(t *testing.T) {
			assert.Equal(t, tc.want, containsPattern(tc.keyword))
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{ArticleID: 42}
	assert.EqualError(t, err, "article not found - articleId: 42")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
