package models

// Budget represents a user's monthly spending ceiling. At most one row
// per user, enforced by a unique index on user_id.
type Budget struct {
	Base
	UserID uint  `gorm:"not null;uniqueIndex" json:"user_id"`
	Amount int64 `gorm:"type:bigint;not null" json:"amount"`
}
