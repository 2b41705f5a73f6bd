package dto

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	EmailAddress string `json:"email_address" validate:"required,email"`
	Password     string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	EmailAddress string `json:"email_address" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// LoginResponse carries the signed bearer token
type LoginResponse struct {
	Token string `json:"token"`
}
