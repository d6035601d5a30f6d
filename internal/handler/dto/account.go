// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// LoginRequest represents the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the signed token returned on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents the request body for registering a user.
type RegisterRequest struct {
	FirstName string `json:"nome"`
	LastName  string `json:"sobrenome"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// MessageResponse is the generic confirmation and error body.
type MessageResponse struct {
	Message string `json:"message"`
}
