package account

// RegisterRequest represents the payload for creating a new account.
type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthenticateRequest represents the payload for authenticating an account.
type AuthenticateRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthenticateResponse carries the signed session token issued on success.
type AuthenticateResponse struct {
	AccessToken string
}
