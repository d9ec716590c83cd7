// Package model holds the GORM persistence models mirroring database tables.
package model

import (
	"time"

	"authgate/internal/domain/entity"
)

// AccountModel mirrors the 'accounts' table. The database assigns the numeric
// id and enforces username uniqueness through the unique index; that index is
// the authoritative duplicate detection for concurrent signups.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain maps the persistence model back to a pure domain entity.
func (m *AccountModel) ToDomain() *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// FromAccountDomain maps a domain entity to its persistence model.
func FromAccountDomain(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}
