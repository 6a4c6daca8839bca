package models

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	gorm.Model
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	Password               string `json:"-"`
	Role                   string `json:"role"`
	AccountActivated       bool   `json:"accountActivated"`
	AccountActivationToken string `json:"-"`
	PasswordResetToken     string `json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
