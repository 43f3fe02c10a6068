package api

// LoginRequest is the payload for POST /v1/auth/login.
// Credentials are accepted unchecked: a session is just a display name plus
// the role it picked on the login screen.
type LoginRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required,oneof=student teacher admin"`
}

// UserResponse is the shape of session data returned in API responses.
type UserResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// MeResponse is the response for GET /v1/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
