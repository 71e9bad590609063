package domain

import "time"

type User struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"` // Never return password in JSON
	Name     *string `json:"name"`
	// RefreshToken is the single live refresh token for this user. Overwritten
	// on every login/refresh, cleared on logout. A nil value means no active
	// session; this field is the entire revocation mechanism.
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
