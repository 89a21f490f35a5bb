package handler

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopcinemas/loop-api/internal/config"
	"github.com/loopcinemas/loop-api/internal/metrics"
	"github.com/loopcinemas/loop-api/internal/repository"
	"github.com/loopcinemas/loop-api/internal/utils"
)

// UserHandler bundles dependencies for the account endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewUserHandler(cfg config.Config, users UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

// emailRe is deliberately loose: anything shaped like a@b.c passes and
// the mail provider sorts out the rest.
var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// ----- DTOs -----

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type updateUserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// setSessionCookie signs a session token for the user and attaches it
// as the session cookie. Token expiry and cookie Max-Age match so the
// credential and its transport lapse together.
func (h *UserHandler) setSessionCookie(c echo.Context, userID string) error {
	ttl := time.Duration(h.Cfg.TokenTTLSeconds) * time.Second
	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, userID, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.Cfg.TokenTTLSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// clearSessionCookie expires the session cookie. The token itself is
// not invalidated server-side; signout is purely presentational.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup creates an account. All field violations are collected into
// one error map so the form can mark every bad input at once.
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	errs := map[string]string{}
	if req.Name == "" {
		errs["name"] = "Name cannot be empty"
	}
	if req.Email == "" {
		errs["email"] = "Email cannot be empty"
	} else if !emailRe.MatchString(req.Email) {
		errs["email"] = "Email is invalid"
	}
	if req.Password == "" {
		errs["password"] = "Password cannot be empty"
	} else if err := utils.CheckPasswordStrength(req.Password); err != nil {
		errs["password"] = err.Error()
	}
	if len(errs) > 0 {
		return fieldErrJSON(c, "signup validation failed", errs)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return fieldErrJSON(c, "signup validation failed", map[string]string{
				"email": "A user with this email already exists",
			})
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	metrics.SignupsTotal.Inc()

	return c.JSON(http.StatusOK, echo.Map{"type": "user", "user": u})
}

// Signin verifies credentials and sets the session cookie. Unknown
// email and wrong password produce the same message.
func (h *UserHandler) Signin(c echo.Context) error {
	var req signinReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return errJSON(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusBadRequest, "email or password is incorrect")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return errJSON(c, http.StatusBadRequest, "email or password is incorrect")
	}

	if err := h.setSessionCookie(c, u.UserID); err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "user", "user": u})
}

// Signout clears the session cookie.
func (h *UserHandler) Signout(c echo.Context) error {
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"type": "success", "msg": "signed out"})
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, currentUser(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusBadRequest, "user not found")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "user", "user": u})
}

// Update applies a partial profile edit. Absent fields keep their
// stored value; provided fields are validated like at signup, and email
// uniqueness is re-checked against other accounts.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return errJSON(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, currentUser(c))
	if err != nil {
		if err == sql.ErrNoRows {
			return errJSON(c, http.StatusBadRequest, "user not found")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	errs := map[string]string{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			errs["name"] = "Name cannot be empty"
		} else {
			u.Name = name
		}
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			errs["email"] = "Email cannot be empty"
		} else if !emailRe.MatchString(email) {
			errs["email"] = "Email is invalid"
		} else {
			u.Email = email
		}
	}
	if req.Password != nil {
		if *req.Password == "" {
			errs["password"] = "Password cannot be empty"
		} else if err := utils.CheckPasswordStrength(*req.Password); err != nil {
			errs["password"] = err.Error()
		} else {
			hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
			if err != nil {
				return errJSON(c, http.StatusInternalServerError, "Internal server error")
			}
			u.PasswordHash = hash
		}
	}
	if len(errs) > 0 {
		return fieldErrJSON(c, "profile validation failed", errs)
	}

	if err := h.Users.Update(ctx, u); err != nil {
		if err == repository.ErrEmailExists {
			return fieldErrJSON(c, "profile validation failed", map[string]string{
				"email": "A user with this email already exists",
			})
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	u, err = h.Users.GetByID(ctx, u.UserID)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{"type": "user", "user": u})
}

// Delete removes the account along with its reviews and reservations,
// then clears the session cookie.
func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.Delete(ctx, currentUser(c)); err != nil {
		if err == repository.ErrNotFound {
			return errJSON(c, http.StatusBadRequest, "user not found")
		}
		return errJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"type": "success", "msg": "user deleted"})
}
