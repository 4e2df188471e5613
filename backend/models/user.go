package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:120;unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, admin
}
