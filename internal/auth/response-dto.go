package auth

import "time"

// AuthResponse is the login response consumed by the client session:
// an opaque bearer token plus its expiry in unix milliseconds.
type AuthResponse struct {
	Token           string `json:"token"`
	ExpiresAtMillis int64  `json:"expiresAtMillis"`
}

// RegisterResponse confirms account creation. The client does not consume
// its shape beyond the status code.
type RegisterResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
