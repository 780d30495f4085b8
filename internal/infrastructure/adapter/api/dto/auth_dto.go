package dto

// SignUpRequest represents the API request for creating an account
type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LogInRequest represents the API request for logging in
type LogInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse represents a freshly opened session. Landing tells the
// client which view to route to based on the stored role.
type SessionResponse struct {
	Token   string `json:"token"`
	Landing string `json:"landing"`
}

// PasswordResetRequest represents the API request for dispatching a reset token
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// PasswordResetConfirmRequest represents the API request for completing a reset
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ProfileResponse represents the authenticated user's stored profile
type ProfileResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
