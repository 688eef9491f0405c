package model

// Column limits shared by the schema and request validation
const (
	ArticleTitleMaxLength   = 255
	ArticleContentMaxLength = 10000
	ArticleHashtagMaxLength = 255
)

// Article is a board post. It references its author; it does not own it.
type Article struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	UserAccountID int64       `gorm:"column:user_account_id;not null;index:idx_article_user_account_id"`
	UserAccount   UserAccount `gorm:"foreignKey:UserAccountID;references:ID"`

	Title   string  `gorm:"column:title;size:255;not null;index:idx_article_title"`
	Content string  `gorm:"column:content;size:10000;not null"`
	Hashtag *string `gorm:"column:hashtag;size:255;index:idx_article_hashtag"`

	AuditingFields
}

// TableName specifies the table name for Article
func (*Article) TableName() string {
	return "article"
}

// NewArticle creates a new Article authored by userAccount.
// userAccount must be a persisted account (non-zero ID).
func NewArticle(userAccount *UserAccount, title, content string, hashtag *string) *Article {
	return &Article{
		UserAccountID: userAccount.ID,
		UserAccount:   *userAccount,
		Title:         title,
		Content:       content,
		Hashtag:       hashtag,
	}
}
