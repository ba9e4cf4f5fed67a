// Package model holds the GORM persistence models mirroring the database
// schema. They are kept separate from domain entities so schema concerns
// never leak into the domain.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	AccountDetails *AccountDetailsModel `gorm:"foreignKey:UserID"`
	RefreshTokens  []RefreshTokenModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AccountDetailsModel mirrors the 'account_details' table. UserID references
// users.id and is also the primary key, which makes "at most one companion
// record per user" a schema invariant. Skills and Links are JSONB documents.
type AccountDetailsModel struct {
	UserID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ReferralCode string         `gorm:"type:varchar(32);unique;not null"`
	Headline     string         `gorm:"type:varchar(255)"`
	Location     string         `gorm:"type:varchar(255)"`
	Company      string         `gorm:"type:varchar(255)"`
	Bio          string         `gorm:"type:text"`
	Skills       datatypes.JSON `gorm:"type:jsonb"`
	Links        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountDetailsModel) TableName() string {
	return "account_details"
}
