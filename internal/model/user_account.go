package model

// UserAccount is a registered author identity
type UserAccount struct {
	// Primary key - IDENTITY on Oracle, AUTO_INCREMENT on MySQL
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`

	UserID       string  `gorm:"column:user_id;size:50;not null;uniqueIndex:idx_user_account_user_id"` // 로그인 ID (unique)
	UserPassword string  `gorm:"column:user_password;size:255;not null"`                               // 평문 그대로 저장 (인증 범위 밖)
	Email        string  `gorm:"column:email;size:100;not null;uniqueIndex:idx_user_account_email"`
	Nickname     string  `gorm:"column:nickname;size:100;not null"`
	Memo         *string `gorm:"column:memo;size:255"`

	AuditingFields
}

// TableName specifies the table name for UserAccount
func (*UserAccount) TableName() string {
	return "user_account"
}

// NewUserAccount creates a new UserAccount instance
func NewUserAccount(userID, userPassword, email, nickname string, memo *string) *UserAccount {
	return &UserAccount{
		UserID:       userID,
		UserPassword: userPassword,
		Email:        email,
		Nickname:     nickname,
		Memo:         memo,
	}
}
