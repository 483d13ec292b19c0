package models

// User is an identity record owned by the auth subsystem. Created at signup,
// never mutated or deleted by this application.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
}
