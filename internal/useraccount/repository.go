package useraccount

import (
	"context"

	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
	"gorm.io/gorm"
)

// UserAccountRepository looks up authors; accounts are provisioned outside the board
type UserAccountRepository struct{}

func NewUserAccountRepository() *UserAccountRepository {
	return &UserAccountRepository{}
}

func (r *UserAccountRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*model.UserAccount, error) {
	var userAccount model.UserAccount
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&userAccount).Error
	if err != nil {
		return nil, err
	}
	return &userAccount, nil
}
