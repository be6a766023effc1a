package model

// User represents a registered shopper account. The password field holds
// a bcrypt hash and is never serialised in API responses.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}

// Credentials represents the payload for registration and login requests.
type Credentials struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}
