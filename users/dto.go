// Data transfer objects for the account operations. The JSON tags here are the
// wire contract; existing clients depend on the exact field names (including
// the raw vs parsed history shapes) and must not be changed.
package users

import (
	"encoding/json"
	"time"
)

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" example:"budihermawanto"`
	Nama     string `json:"nama" example:"Budi Hermawanto"`
	Email    string `json:"email" example:"budihermawanto@gmail.com"`
	Password string `json:"password" example:"budi1234"`
}

// LoginRequest is the body of POST /api/login. Account matches either a
// username or an email.
type LoginRequest struct {
	Account  string `json:"account" example:"budihermawanto"`
	Password string `json:"password" example:"budi1234"`
}

// RegisteredUser is the profile returned by a successful registration.
// History carries the stored serialized form here, not the parsed sequence.
type RegisteredUser struct {
	Username string `json:"username"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	History  string `json:"history" example:"[]"`
}

// RegisterResponse is the 201 body of POST /api/register.
type RegisterResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// SessionUser is the profile returned alongside a login token, with History
// parsed into its sequence form.
type SessionUser struct {
	Username string            `json:"username"`
	Nama     string            `json:"nama"`
	Email    string            `json:"email"`
	History  []json.RawMessage `json:"history"`
}

// LoginResponse is the 201 body of POST /api/login.
type LoginResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    SessionUser `json:"user"`
}

// ProfileUser is the caller's own full record as returned by GET /api/user.
// Password holds the stored bcrypt hash.
type ProfileUser struct {
	Username  string            `json:"username"`
	Nama      string            `json:"nama"`
	Email     string            `json:"email"`
	Password  string            `json:"password"`
	History   []json.RawMessage `json:"history"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ProfileResponse is the 201 body of GET /api/user.
type ProfileResponse struct {
	Status bool        `json:"status"`
	User   ProfileUser `json:"user"`
}

// DeleteResponse is the 201 body of DELETE /api/user.
type DeleteResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ListEntry is one element of the listing. Id, password, and history are
// excluded from every entry.
type ListEntry struct {
	Username  string    `json:"username"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListResponse is the 201 body of GET /api/listuser.
type ListResponse struct {
	Status bool        `json:"status"`
	List   []ListEntry `json:"list"`
}
