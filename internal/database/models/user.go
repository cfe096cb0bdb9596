package models

type User struct {
	Base
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Position     string `json:"position"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	IsApproved   bool   `gorm:"default:false" json:"is_approved"`
}

func (User) TableName() string {
	return "users"
}
