package users

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/user/akun-go/apperror"
	"github.com/user/akun-go/auth"
)

// Register/login validation messages, in the order the fields are checked.
const (
	msgNeedUsername  = "Masukkan username"
	msgNeedNama      = "Masukkan nama"
	msgNeedEmail     = "Masukkan email"
	msgNeedGmail     = "Harap pakai Gmail"
	msgNeedPassword  = "Masukkan password"
	msgShortPassword = "Kata sandi minimal harus 6 karakter"
	msgNeedAccount   = "Masukkan username atau email"
)

// Success messages.
const (
	msgRegistered = "Pengguna berhasil ditambahkan"
	msgLoggedIn   = "Login berhasil"
	msgDeleted    = "Pengguna berhasil di hapus"
)

// gmailMarker is the accepted email provider. Registration with any other
// provider is rejected; this narrow policy is intentional.
const gmailMarker = "@gmail"

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 6

// UserHandlers provides the HTTP handlers for the account operations.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates UserHandlers around a service.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleRegister godoc
// @Summary User Register
// @Description Registers a new account. Only Gmail addresses are accepted.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body users.RegisterRequest true "Registration details"
// @Success 201 {object} users.RegisterResponse
// @Failure 400 {object} apperror.Envelope
// @Failure 500 {object} apperror.Envelope
// @Router /api/register [post]
func (h *UserHandlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		// An absent or malformed body leaves req zero-valued and falls
		// through to the per-field validation below.
		_ = json.NewDecoder(r.Body).Decode(&req)
		defer r.Body.Close()

		if req.Username == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedUsername, nil))
			return
		}
		if req.Nama == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedNama, nil))
			return
		}
		if req.Email == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedEmail, nil))
			return
		}
		if !strings.Contains(req.Email, gmailMarker) {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedGmail, nil))
			return
		}
		if req.Password == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedPassword, nil))
			return
		}
		if len(req.Password) < minPasswordLen {
			auth.WriteError(w, r, apperror.NewValidationError(msgShortPassword, nil))
			return
		}

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, RegisterResponse{
			Status:  true,
			Message: msgRegistered,
			User: RegisteredUser{
				Username: user.Username,
				Nama:     user.Nama,
				Email:    user.Email,
				History:  user.History,
			},
		})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in with a username or email plus password and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body users.LoginRequest true "Login credentials"
// @Success 201 {object} users.LoginResponse
// @Failure 400 {object} apperror.Envelope
// @Failure 401 {object} apperror.Envelope
// @Failure 404 {object} apperror.Envelope
// @Failure 500 {object} apperror.Envelope
// @Router /api/login [post]
func (h *UserHandlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		defer r.Body.Close()

		if req.Account == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedAccount, nil))
			return
		}
		if req.Password == "" {
			auth.WriteError(w, r, apperror.NewValidationError(msgNeedPassword, nil))
			return
		}

		token, user, err := h.service.Login(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		history, err := parseHistory(user.History)
		if err != nil {
			auth.WriteError(w, r, apperror.NewInternalError(msgLoginFailed, err))
			return
		}

		auth.WriteJSON(w, http.StatusCreated, LoginResponse{
			Status:  true,
			Message: msgLoggedIn,
			Token:   token,
			User: SessionUser{
				Username: user.Username,
				Nama:     user.Nama,
				Email:    user.Email,
				History:  history,
			},
		})
	}
}

// HandleProfile godoc
// @Summary Get User
// @Description Returns the authenticated caller's own record.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 201 {object} users.ProfileResponse
// @Failure 401 {object} apperror.Envelope
// @Failure 500 {object} apperror.Envelope
// @Router /api/user [get]
func (h *UserHandlers) HandleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Token tidak ditemukan", nil))
			return
		}

		user, err := h.service.Profile(r.Context(), userID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		history, err := parseHistory(user.History)
		if err != nil {
			auth.WriteError(w, r, apperror.NewInternalError(msgFetchFailed, err))
			return
		}

		auth.WriteJSON(w, http.StatusCreated, ProfileResponse{
			Status: true,
			User: ProfileUser{
				Username:  user.Username,
				Nama:      user.Nama,
				Email:     user.Email,
				Password:  user.Password,
				History:   history,
				CreatedAt: user.CreatedAt,
				UpdatedAt: user.UpdatedAt,
			},
		})
	}
}

// HandleDelete godoc
// @Summary Delete User
// @Description Deletes the authenticated caller's own record.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 201 {object} users.DeleteResponse
// @Failure 401 {object} apperror.Envelope
// @Failure 500 {object} apperror.Envelope
// @Router /api/user [delete]
func (h *UserHandlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Token tidak ditemukan", nil))
			return
		}

		if err := h.service.Delete(r.Context(), userID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, DeleteResponse{
			Status:  true,
			Message: msgDeleted,
		})
	}
}

// HandleList godoc
// @Summary Get List User
// @Description Lists every account's public fields.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 201 {object} users.ListResponse
// @Failure 401 {object} apperror.Envelope
// @Failure 500 {object} apperror.Envelope
// @Router /api/listuser [get]
func (h *UserHandlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.UserIDFromContext(r.Context()); !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Token tidak ditemukan", nil))
			return
		}

		usersList, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		list := make([]ListEntry, 0, len(usersList))
		for _, u := range usersList {
			list = append(list, ListEntry{
				Username:  u.Username,
				Nama:      u.Nama,
				Email:     u.Email,
				CreatedAt: u.CreatedAt,
				UpdatedAt: u.UpdatedAt,
			})
		}

		auth.WriteJSON(w, http.StatusCreated, ListResponse{
			Status: true,
			List:   list,
		})
	}
}
