package v1

import (
	"github.com/kasku/backend/internal/models"
)

// RegisterEditable is the data needed to create an account.
type RegisterEditable struct {
	Email    string `json:"email" example:"budi@example.com"`  // Email address, used to log in
	Username string `json:"username" example:"budi"`           // Display name, must be unique
	Password string `json:"password" example:"rahasia-sekali"` // Password, at least 8 characters
}

type LoginEditable struct {
	Email    string `json:"email" example:"budi@example.com"`
	Password string `json:"password" example:"rahasia-sekali"`
}

type UserLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profile"` // The profile of the user
}

type User struct {
	models.DefaultModel
	Email    string    `json:"email" example:"budi@example.com"`                     // Email address
	Username string    `json:"username" example:"budi"`                              // Display name
	Image    *string   `json:"image" example:"https://example.com/avatars/budi.png"` // URL of the profile image
	Links    UserLinks `json:"links"`
}

func newUser(url string, model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Username:     model.Username,
		Image:        model.Image,
		Links: UserLinks{
			Self: url + "/v1/profile",
		},
	}
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                 // Data for the user
	Error *string `json:"error" example:"the email or password is not correct"` // The error, if any occurred
}
