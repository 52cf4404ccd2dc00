package model

// User is an account allowed to sign in.
type User struct {
	ID           string `yaml:"user_id"`
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"` // bcrypt
}
