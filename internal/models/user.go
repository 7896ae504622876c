package models

import (
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters for a password.
const MinPasswordLength = 8

// User is an account that owns categories, transactions and savings targets.
type User struct {
	DefaultModel
	Email        string  `gorm:"uniqueIndex"`
	Username     string  `gorm:"uniqueIndex"`
	PasswordHash string  `json:"-"`
	Image        *string // URL of the profile image
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)

	return nil
}

func (u *User) AfterSave(_ *gorm.DB) error {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrEmailInvalid
	}

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// SetPassword stores the bcrypt hash of the password.
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the password against the stored hash.
func (u User) CheckPassword(password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return ErrInvalidCredentials
	}

	return err
}

// Authenticate looks up the user by email and verifies the password.
//
// A missing user reports the same error as a wrong password.
func Authenticate(db *gorm.DB, email, password string) (User, error) {
	var user User
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if errors.Is(err, ErrResourceNotFound) {
		return User{}, ErrInvalidCredentials
	} else if err != nil {
		return User{}, err
	}

	if err := user.CheckPassword(password); err != nil {
		return User{}, err
	}

	return user, nil
}
