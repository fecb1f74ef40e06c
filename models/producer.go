package models

import (
	"time"

	"github.com/google/uuid"
)

// ProducerStatus is the account-lifecycle state of a producer. It is
// orthogonal to the IsActive flag: a producer may be approved yet
// deactivated by an administrator.
type ProducerStatus string

const (
	ProducerStatusPending  ProducerStatus = "pending"
	ProducerStatusApproved ProducerStatus = "approved"
	ProducerStatusRejected ProducerStatus = "rejected"
)

// Producer represents a registered producer account. It is the principal
// attached to authenticated requests.
//
// PasswordHash is the bcrypt hash of the producer's password. It must never
// leave the store/service layers and is excluded from JSON serialization.
type Producer struct {
	ID                 uuid.UUID      `json:"id"`
	FullName           string         `json:"full_name"`
	Email              string         `json:"email"`
	PasswordHash       string         `json:"-"`
	FarmName           *string        `json:"farm_name,omitempty"`
	Phone              *string        `json:"phone,omitempty"`
	LanguagePreference string         `json:"language_preference"`
	IsActive           bool           `json:"is_active"`
	EmailVerified      bool           `json:"email_verified"`
	Status             ProducerStatus `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Producer model.
func (p Producer) TableName() string {
	return "producers"
}

// ProducerUpdate describes a partial update of a producer profile.
// Nil fields are left unchanged.
type ProducerUpdate struct {
	FullName           *string         `json:"full_name,omitempty"`
	FarmName           *string         `json:"farm_name,omitempty"`
	Phone              *string         `json:"phone,omitempty"`
	LanguagePreference *string         `json:"language_preference,omitempty"`
	IsActive           *bool           `json:"is_active,omitempty"`
	Status             *ProducerStatus `json:"status,omitempty"`
}

// ProducerFilter narrows producer list queries. Zero-valued fields are not
// applied.
type ProducerFilter struct {
	Search   string
	IsActive *bool
	Status   ProducerStatus
	Page     int64
	PerPage  int64
}
