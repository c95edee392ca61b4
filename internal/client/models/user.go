// Package models defines the records the calendar stores persist.
package models

// User is a stored account. Password holds whatever the configured
// credential scheme produced: the verbatim password under
// cryptox.Plaintext, a bcrypt hash under cryptox.Bcrypt.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credentials is the raw signup/login input supplied by the auth surface.
// Usernames are free-form but must be non-empty; uniqueness is enforced
// by the user store on Add.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
