package model

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the authenticated user a call acts for.
type Scope struct {
	UserID   string
	Username string
}
