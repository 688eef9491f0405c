package article

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SearchType selects which field a keyword search runs against
type SearchType string

const (
	SearchTypeTitle    SearchType = "TITLE"
	SearchTypeContent  SearchType = "CONTENT"
	SearchTypeHashtag  SearchType = "HASHTAG"
	SearchTypeUserID   SearchType = "USER_ID"
	SearchTypeNickname SearchType = "NICKNAME"
)

// SearchTypes lists every search type in display order
var SearchTypes = []SearchType{
	SearchTypeTitle,
	SearchTypeContent,
	SearchTypeUserID,
	SearchTypeNickname,
	SearchTypeHashtag,
}

// ParseSearchType parses a search type name, ignoring case and surrounding spaces
func ParseSearchType(name string) (SearchType, error) {
	candidate := SearchType(strings.ToUpper(strings.TrimSpace(name)))
	for _, t := range SearchTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", fmt.Errorf("searchType=%q: %w", name, ErrUnsupportedSearchType)
}

// Field returns the searchable field the type is bound to
func (t SearchType) Field() string {
	switch t {
	case SearchTypeTitle:
		return FieldTitle
	case SearchTypeContent:
		return FieldContent
	case SearchTypeHashtag:
		return FieldHashtag
	case SearchTypeUserID:
		return FieldUserID
	case SearchTypeNickname:
		return FieldNickname
	default:
		return ""
	}
}

func (t SearchType) Description() string {
	switch t {
	case SearchTypeTitle:
		return "제목"
	case SearchTypeContent:
		return "본문"
	case SearchTypeHashtag:
		return "해시태그"
	case SearchTypeUserID:
		return "유저 ID"
	case SearchTypeNickname:
		return "닉네임"
	default:
		return ""
	}
}

// Searchable fields
const (
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldHashtag   = "hashtag"
	FieldCreatedAt = "createdAt"
	FieldCreatedBy = "createdBy"
	FieldUserID    = "userId"
	FieldNickname  = "nickname"
)

const (
	articleTable     = "article"
	userAccountTable = "user_account"
)

type operator int

const (
	containsIgnoreCase operator = iota
	equals
)

type fieldBinding struct {
	column   clause.Column
	operator operator
	// true when the column lives on the author and needs the user_account join
	joinUserAccount bool
	parse           func(raw string) (any, error)
}

// searchBindings is the complete allow-list; anything else is rejected
var searchBindings = map[string]fieldBinding{
	FieldTitle:     {column: articleColumn("title"), operator: containsIgnoreCase, parse: parseString},
	FieldContent:   {column: articleColumn("content"), operator: containsIgnoreCase, parse: parseString},
	FieldHashtag:   {column: articleColumn("hashtag"), operator: containsIgnoreCase, parse: parseString},
	FieldCreatedAt: {column: articleColumn("created_at"), operator: equals, parse: parseTimestamp},
	FieldCreatedBy: {column: articleColumn("created_by"), operator: containsIgnoreCase, parse: parseString},
	FieldUserID:    {column: userAccountColumn("user_id"), operator: containsIgnoreCase, joinUserAccount: true, parse: parseString},
	FieldNickname:  {column: userAccountColumn("nickname"), operator: containsIgnoreCase, joinUserAccount: true, parse: parseString},
}

func init() {
	for _, t := range SearchTypes {
		if _, ok := searchBindings[t.Field()]; !ok {
			panic(fmt.Sprintf("article: search type %s has no field binding", t))
		}
	}
}

// SearchableFields returns the allow-listed field names
func SearchableFields() []string {
	return []string{FieldTitle, FieldContent, FieldHashtag, FieldCreatedAt, FieldCreatedBy, FieldUserID, FieldNickname}
}

// Predicate is one bound (field, value) filter
type Predicate struct {
	field   string
	binding fieldBinding
	value   any
}

// BindPredicate binds value to an allow-listed field.
// Unknown fields yield ErrUnsupportedSearchField, unparsable values ErrInvalidSearchValue.
func BindPredicate(field, value string) (Predicate, error) {
	binding, ok := searchBindings[field]
	if !ok {
		return Predicate{}, fmt.Errorf("field=%q: %w", field, ErrUnsupportedSearchField)
	}

	parsed, err := binding.parse(value)
	if err != nil {
		return Predicate{}, fmt.Errorf("field=%q value=%q: %w", field, value, err)
	}

	return Predicate{field: field, binding: binding, value: parsed}, nil
}

// mustBindPredicate is used by the fixed per-field queries whose fields are known constants
func mustBindPredicate(field, value string) Predicate {
	p, err := BindPredicate(field, value)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Predicate) Field() string {
	return p.field
}

func (p Predicate) Value() any {
	return p.value
}

func (p Predicate) apply(db *gorm.DB) *gorm.DB {
	switch p.binding.operator {
	case equals:
		return db.Where(clause.Eq{Column: p.binding.column, Value: p.value})
	default:
		keyword, _ := p.value.(string)
		return db.Where("LOWER(?) LIKE ? ESCAPE '!'", p.binding.column, containsPattern(keyword))
	}
}

// withPredicates applies predicates with AND, joining user_account at most once
func withPredicates(predicates []Predicate) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		joined := false
		for _, p := range predicates {
			if p.binding.joinUserAccount && !joined {
				db = db.Joins("JOIN ? ON ? = ?",
					clause.Table{Name: userAccountTable},
					userAccountColumn("id"),
					articleColumn("user_account_id"),
				)
				joined = true
			}
			db = p.apply(db)
		}
		return db
	}
}

// containsPattern lowercases keyword and escapes LIKE wildcards so it matches literally
func containsPattern(keyword string) string {
	escaped := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(strings.ToLower(keyword))
	return "%" + escaped + "%"
}

func parseString(raw string) (any, error) {
	return raw, nil
}

func parseTimestamp(raw string) (any, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(raw))
	if err != nil {
		return nil, ErrInvalidSearchValue
	}
	return t.UTC(), nil
}

func articleColumn(name string) clause.Column {
	return clause.Column{Table: articleTable, Name: name}
}

func userAccountColumn(name string) clause.Column {
	return clause.Column{Table: userAccountTable, Name: name}
}
