package useraccount

import (
	"time"

	"github.com/changhyeonkim/project-board/go-api-server/internal/model"
)

// UserAccountDto is an immutable snapshot of a user account.
// UserPassword never leaves the service boundary as JSON.
type UserAccountDto struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"userId"`
	UserPassword string    `json:"-"`
	Email        string    `json:"email"`
	Nickname     string    `json:"nickname"`
	Memo         *string   `json:"memo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
	ModifiedAt   time.Time `json:"modifiedAt"`
	ModifiedBy   string    `json:"modifiedBy"`
}

// NewUserAccountDto copies every field of entity, audit metadata included
func NewUserAccountDto(entity *model.UserAccount) UserAccountDto {
	return UserAccountDto{
		ID:           entity.ID,
		UserID:       entity.UserID,
		UserPassword: entity.UserPassword,
		Email:        entity.Email,
		Nickname:     entity.Nickname,
		Memo:         copyString(entity.Memo),
		CreatedAt:    entity.CreatedAt,
		CreatedBy:    entity.CreatedBy,
		ModifiedAt:   entity.ModifiedAt,
		ModifiedBy:   entity.ModifiedBy,
	}
}

// ToEntity builds a new, not yet persisted entity. Audit fields are left to the storage layer.
func (d UserAccountDto) ToEntity() *model.UserAccount {
	return model.NewUserAccount(d.UserID, d.UserPassword, d.Email, d.Nickname, d.Memo)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
