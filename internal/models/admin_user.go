package models

// AdminUser operates the merchant registry and verifies transactions.
// The first admin is seeded at boot from config.
type AdminUser struct {
	BaseModel
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"default:admin" json:"role"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
