package handlers

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type DriverForm struct {
	Name          string `validate:"required,max=150"`
	Phone         string `validate:"max=20"`
	LicenseNumber string `validate:"max=50"`
	PhotoURL      string `validate:"max=255"`
}
