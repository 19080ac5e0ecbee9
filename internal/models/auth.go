package models

// LoginRequest represents a login request
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RegisterRequest represents a sign-up request
type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	AccessToken  string        `json:"accessToken,omitempty"`
	RefreshToken string        `json:"refreshToken,omitempty"`
	User         *LoginSubject `json:"user,omitempty"`
	Message      string        `json:"message,omitempty"`
}

// LoginSubject is the user echoed back by a login
type LoginSubject struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// Profile is the signed-in user
type Profile struct {
	ID             string `json:"id" yaml:"id"`
	Username       string `json:"username" yaml:"username"`
	Email          string `json:"email" yaml:"email"`
	Phone          string `json:"phone" yaml:"phone"`
	Level          Level  `json:"level,omitempty" yaml:"level,omitempty"`
	ProfilePicture string `json:"profilePicture" yaml:"profilePicture"`
}
