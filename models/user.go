package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a dispatch account. Users own trucks, and every other
// record in the system is reached through that ownership chain.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // "-" means don't include in JSON responses
	Email        string    `json:"email" gorm:"uniqueIndex;size:150;not null"`
	FullName     string    `json:"full_name" gorm:"size:150;not null"`
	Trucks       []Truck   `json:"trucks,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt    time.Time `json:"created_at"`
}

// SetPassword hashes the given password and sets it on the user model.
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the given password matches the user's hashed password.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}
