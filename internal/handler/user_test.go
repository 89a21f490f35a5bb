package handler

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/loopcinemas/loop-api/internal/config"
	"github.com/loopcinemas/loop-api/internal/model"
	"github.com/loopcinemas/loop-api/internal/repository"
	"github.com/loopcinemas/loop-api/internal/utils"
)

const strongPassword = "Kz7!mVq2@pXw9$"

type stubUserStore struct {
	byEmail map[string]model.User
	byID    map[string]model.User
	updated []model.User
	deleted []string
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{byEmail: map[string]model.User{}, byID: map[string]model.User{}}
}

func (s *stubUserStore) add(u model.User) {
	s.byEmail[u.Email] = u
	s.byID[u.UserID] = u
}

func (s *stubUserStore) Create(ctx context.Context, name, email, password string, cost int) (model.User, error) {
	if _, ok := s.byEmail[email]; ok {
		return model.User{}, repository.ErrEmailExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{UserID: "u-" + name, Name: name, Email: email, PasswordHash: hash}
	s.add(u)
	return u, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id string) (model.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

func (s *stubUserStore) Update(ctx context.Context, u model.User) error {
	for id, existing := range s.byID {
		if id != u.UserID && existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	s.updated = append(s.updated, u)
	s.byID[u.UserID] = u
	return nil
}

func (s *stubUserStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

func testConfig() config.Config {
	return config.Config{JWTSecret: "secret", TokenTTLSeconds: 3600, BcryptCost: bcrypt.MinCost}
}

func newUserContext(method, path, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == utils.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestSignupCollectsAllErrors(t *testing.T) {
	h := NewUserHandler(testConfig(), newStubUserStore())

	c, rec := newUserContext(http.MethodPost, "/api/user/signup", `{}`, "")
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Name cannot be empty", "Email cannot be empty", "Password cannot be empty"} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in %s", want, body)
		}
	}
}

func TestSignupWeakPassword(t *testing.T) {
	h := NewUserHandler(testConfig(), newStubUserStore())

	c, rec := newUserContext(http.MethodPost, "/api/user/signup",
		`{"name":"Alice","email":"alice@example.com","password":"short"}`, "")
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Password must be at least 14 characters long") {
		t.Fatalf("expected strength error: %s", rec.Body.String())
	}
}

func TestSignupSuccess(t *testing.T) {
	store := newStubUserStore()
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodPost, "/api/user/signup",
		`{"name":"Alice","email":"alice@example.com","password":"`+strongPassword+`"}`, "")
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := store.byEmail["alice@example.com"]; !ok {
		t.Fatalf("user not stored")
	}
	// Signup does not start a session; the client signs in afterwards.
	if sessionCookie(rec) != nil {
		t.Fatalf("signup must not set the session cookie")
	}
	if strings.Contains(rec.Body.String(), "password_hash") {
		t.Fatalf("hash must never leave the server: %s", rec.Body.String())
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newStubUserStore()
	store.add(model.User{UserID: "u1", Email: "alice@example.com"})
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodPost, "/api/user/signup",
		`{"name":"Alice","email":"alice@example.com","password":"`+strongPassword+`"}`, "")
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "A user with this email already exists") {
		t.Fatalf("expected duplicate error: %s", rec.Body.String())
	}
}

func TestSigninSetsSessionCookie(t *testing.T) {
	store := newStubUserStore()
	hash, err := utils.HashPassword(strongPassword, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.add(model.User{UserID: "u1", Email: "alice@example.com", PasswordHash: hash})
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodPost, "/api/user/signin",
		`{"email":"alice@example.com","password":"`+strongPassword+`"}`, "")
	if err := h.Signin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatalf("session cookie not set")
	}
	userID, err := utils.VerifySessionToken("secret", ck.Value)
	if err != nil || userID != "u1" {
		t.Fatalf("cookie token invalid: %v %q", err, userID)
	}
	if !ck.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
}

func TestSigninBadCredentials(t *testing.T) {
	store := newStubUserStore()
	hash, err := utils.HashPassword(strongPassword, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	store.add(model.User{UserID: "u1", Email: "alice@example.com", PasswordHash: hash})
	h := NewUserHandler(testConfig(), store)

	// Unknown email and wrong password must be indistinguishable.
	for _, body := range []string{
		`{"email":"nobody@example.com","password":"` + strongPassword + `"}`,
		`{"email":"alice@example.com","password":"WrongPass7!qXz$"}`,
	} {
		c, rec := newUserContext(http.MethodPost, "/api/user/signin", body, "")
		if err := h.Signin(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "email or password is incorrect") {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	}
}

func TestSignoutExpiresCookie(t *testing.T) {
	h := NewUserHandler(testConfig(), newStubUserStore())

	c, rec := newUserContext(http.MethodGet, "/api/user/signout", "", "")
	if err := h.Signout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatalf("expiring cookie not set")
	}
	if ck.MaxAge >= 0 {
		t.Fatalf("cookie should expire immediately, got MaxAge %d", ck.MaxAge)
	}
}

func TestUpdatePartialEdit(t *testing.T) {
	store := newStubUserStore()
	store.add(model.User{UserID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: "x"})
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodPatch, "/api/user", `{"name":"Alicia"}`, "u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := store.byID["u1"]
	if got.Name != "Alicia" {
		t.Fatalf("name not updated: %+v", got)
	}
	if got.Email != "alice@example.com" || got.PasswordHash != "x" {
		t.Fatalf("absent fields must keep stored values: %+v", got)
	}
}

func TestUpdateDuplicateEmail(t *testing.T) {
	store := newStubUserStore()
	store.add(model.User{UserID: "u1", Name: "Alice", Email: "alice@example.com"})
	store.add(model.User{UserID: "u2", Name: "Bob", Email: "bob@example.com"})
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodPatch, "/api/user", `{"email":"bob@example.com"}`, "u1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "A user with this email already exists") {
		t.Fatalf("expected duplicate error: %s", rec.Body.String())
	}
}

func TestDeleteAccount(t *testing.T) {
	store := newStubUserStore()
	store.add(model.User{UserID: "u1", Email: "alice@example.com"})
	h := NewUserHandler(testConfig(), store)

	c, rec := newUserContext(http.MethodDelete, "/api/user", "", "u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(store.deleted) != 1 || store.deleted[0] != "u1" {
		t.Fatalf("delete not recorded: %v", store.deleted)
	}
	ck := sessionCookie(rec)
	if ck == nil || ck.MaxAge >= 0 {
		t.Fatalf("session cookie should be cleared")
	}
}
