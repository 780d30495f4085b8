package dto

// SetRoleRequest represents the API request for changing a user's role
type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

// UserRoleResponse represents the outcome of a role change
type UserRoleResponse struct {
	ID   uint64 `json:"id"`
	Role string `json:"role"`
}
