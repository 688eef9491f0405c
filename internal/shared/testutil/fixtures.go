package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	"gorm.io/gorm"
)

// TestAuditor is written to created_by / modified_by by test fixtures and SetupTestRouter
const TestAuditor = "uno"

var fixtureSeq atomic.Int64

// AuditedContext returns a context carrying TestAuditor
func AuditedContext() context.Context {
	return sharedContext.WithAuditor(context.Background(), TestAuditor)
}

// NewUserAccount builds an unsaved account with random, unique user id and email
func NewUserAccount() *model.UserAccount {
	n := fixtureSeq.Add(1)
	return model.NewUserAccount(
		fmt.Sprintf("%s%d", randomdata.SillyName(), n),
		"password",
		fmt.Sprintf("user%d.%s", n, randomdata.Email()),
		randomdata.SillyName(),
		nil,
	)
}

// CreateUserAccount inserts userAccount, or a random one when nil
func CreateUserAccount(t *testing.T, db *gorm.DB, userAccount *model.UserAccount) *model.UserAccount {
	t.Helper()

	if userAccount == nil {
		userAccount = NewUserAccount()
	}
	if err := db.WithContext(AuditedContext()).Create(userAccount).Error; err != nil {
		t.Fatalf("Failed to create user account: %v", err)
	}
	return userAccount
}

// CreateArticle inserts an article by author; a blank title or content is filled with random text
func CreateArticle(t *testing.T, db *gorm.DB, author *model.UserAccount, title, content string, hashtag *string) *model.Article {
	t.Helper()

	if title == "" {
		title = fmt.Sprintf("%s %d", randomdata.SillyName(), fixtureSeq.Add(1))
	}
	if content == "" {
		content = randomdata.Paragraph()
	}

	article := model.NewArticle(author, title, content, hashtag)
	if err := db.WithContext(AuditedContext()).Omit("UserAccount").Create(article).Error; err != nil {
		t.Fatalf("Failed to create article: %v", err)
	}
	article.UserAccount = *author
	return article
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}
