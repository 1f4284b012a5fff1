package models

import "time"

// Roles a user can hold. Registration defaults to buyer; completing company
// onboarding promotes the account to seller.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account on the marketplace.
type User struct {
	ID                  string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name                string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email               string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone               string    `json:"phone" gorm:"uniqueIndex;type:varchar(20)" validate:"required"`
	PasswordHash        string    `json:"-" gorm:"type:varchar(255)"`
	Role                string    `json:"role" gorm:"type:varchar(10);default:buyer" validate:"omitempty,oneof=buyer seller admin"`
	IsSeller            bool      `json:"isSeller"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
