package model

// User is the caller identified by a persistence-service access token.
type User struct {
	ID    string
	Email string
	Role  string
}
