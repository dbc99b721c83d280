// Package users implements the account operations: register, login, fetching
// and deleting the caller's own profile, and listing all users. It owns the
// user record model and the persistence boundary those operations run against.
package users

import "time"

// User is a stored account record. Password always holds the bcrypt hash;
// plaintext never crosses the persistence boundary. History is the serialized
// JSON-array text for the account's activity entries and is "[]" for a fresh
// account, never empty.
type User struct {
	ID        string
	Username  string
	Nama      string
	Email     string
	Password  string
	History   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
