package v1

// ProfileEditable represents all user configurable parameters of the profile
type ProfileEditable struct {
	Username        string  `json:"username" example:"budi"`                              // Display name
	Image           *string `json:"image" example:"https://example.com/avatars/budi.png"` // URL of the profile image. An empty string removes it
	CurrentPassword string  `json:"currentPassword" example:"rahasia-sekali"`             // The current password, required to set a new one
	NewPassword     string  `json:"newPassword" example:"lebih-rahasia"`                  // The new password
}

// ProfileDelete confirms the deletion of the account.
type ProfileDelete struct {
	Password string `json:"password" example:"rahasia-sekali"` // The password of the user
}
