package models

// User is a demo account. Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"-"`
}
