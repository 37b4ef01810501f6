package models

// Credentials carries a username/password pair for register and login
// requests. It is transient and must never be persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenWrapper is the response body of a successful login.
type TokenWrapper struct {
	Token string `json:"token"`
}
