package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/akun-go/apperror"
	"github.com/user/akun-go/auth"
)

// emptyHistory is the serialized history of a freshly created account.
const emptyHistory = "[]"

// User-facing operation failure messages.
const (
	msgUserNotFound   = "Pengguna tidak ditemukan"
	msgWrongPassword  = "Password salah"
	msgRegisterFailed = "Gagal menambahkan pengguna"
	msgLoginFailed    = "Gagal login"
	msgFetchFailed    = "Gagal mengambil data pengguna"
)

// UserService implements the account operations over a Store, composing the
// password hasher and token issuer from the auth package. Errors it returns
// are apperror values carrying the user-facing message and status.
type UserService struct {
	store  Store
	issuer *auth.Issuer
}

// NewUserService creates a UserService.
func NewUserService(store Store, issuer *auth.Issuer) *UserService {
	return &UserService{store: store, issuer: issuer}
}

// Register hashes the password and persists a new record with an empty
// history. Any persistence failure, duplicates included, collapses into the
// same generic failure the endpoint has always returned.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgRegisterFailed, err)
	}

	user := &User{
		Username: req.Username,
		Nama:     req.Nama,
		Email:    req.Email,
		Password: hashed,
		History:  emptyHistory,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, apperror.NewDatabaseError(msgRegisterFailed, err)
	}
	return user, nil
}

// Login looks the account up by username or email, verifies the password, and
// issues a token for the record's id.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (string, *User, error) {
	user, err := s.store.FindByAccount(ctx, req.Account)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, apperror.NewNotFoundError(msgUserNotFound, err)
		}
		return "", nil, apperror.NewDatabaseError(msgLoginFailed, err)
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return "", nil, apperror.NewAuthError(msgWrongPassword, nil)
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, apperror.NewDatabaseError(msgLoginFailed, err)
	}
	return token, user, nil
}

// Profile returns the record for the authenticated user id.
func (s *UserService) Profile(ctx context.Context, userID string) (*User, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		// A token outliving its record is not distinguished from any other
		// lookup failure.
		return nil, apperror.NewDatabaseError(msgFetchFailed, err)
	}
	return user, nil
}

// Delete removes the record for the authenticated user id. The delete count is
// deliberately not checked: deleting an already-deleted account succeeds.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if _, err := s.store.DeleteByID(ctx, userID); err != nil {
		return apperror.NewDatabaseError(msgFetchFailed, err)
	}
	return nil
}

// List returns every stored record.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	list, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError(msgFetchFailed, err)
	}
	return list, nil
}

// parseHistory decodes a record's serialized history into its sequence form.
// The result is never nil, so an empty history serializes as [].
func parseHistory(history string) ([]json.RawMessage, error) {
	entries := []json.RawMessage{}
	if err := json.Unmarshal([]byte(history), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return entries, nil
}
