package model

import (
	"time"

	sharedContext "github.com/changhyeonkim/project-board/go-api-server/internal/shared/context"
	"gorm.io/gorm"
)

// auditor used when the statement context carries none (batch jobs, tests)
const systemAuditor = "system"

// GORM이 CreatedAt, ModifiedAt을 자동으로 관리
// CreatedBy, ModifiedBy는 hook에서 context의 auditor로 설정
type AuditingFields struct {
	CreatedAt  time.Time `gorm:"column:created_at;precision:6;not null;autoCreateTime"`
	CreatedBy  string    `gorm:"column:created_by;size:100;not null"`
	ModifiedAt time.Time `gorm:"column:modified_at;precision:6;not null;autoUpdateTime"`
	ModifiedBy string    `gorm:"column:modified_by;size:100;not null"`
}

// BeforeCreate fills both auditor columns; created_* is never written again afterwards
func (f *AuditingFields) BeforeCreate(tx *gorm.DB) error {
	auditor := auditorOf(tx)
	f.CreatedBy = auditor
	f.ModifiedBy = auditor
	return nil
}

// BeforeUpdate only touches modified_by. Callers selecting columns must include it.
func (f *AuditingFields) BeforeUpdate(tx *gorm.DB) error {
	f.ModifiedBy = auditorOf(tx)
	return nil
}

func auditorOf(tx *gorm.DB) string {
	if auditor, ok := sharedContext.AuditorFromContext(tx.Statement.Context); ok {
		return auditor
	}
	return systemAuditor
}
