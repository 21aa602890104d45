package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fencewise/field-service/internal/core/domain"
)

type stubVerifier struct {
	subject string
	err     error
}

func (v stubVerifier) VerifyToken(string) (string, error) {
	return v.subject, v.err
}

type stubLoader struct {
	users map[string]*domain.User
}

func (l stubLoader) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := l.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	alice := &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleWorker, Active: true}
	mw := Auth(stubVerifier{subject: "u1"}, stubLoader{users: map[string]*domain.User{"u1": alice}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if UserFromContext(c) != alice {
			t.Fatalf("user not injected into context")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SuspendedUserStillAuthenticates(t *testing.T) {
	e := echo.New()
	suspended := &domain.User{ID: "u1", Name: "Alice", Role: domain.RoleWorker, Active: false}
	mw := Auth(stubVerifier{subject: "u1"}, stubLoader{users: map[string]*domain.User{"u1": suspended}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Suspension is enforced at login, not per request.
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	mw := Auth(stubVerifier{subject: "u1"}, stubLoader{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	mw := Auth(stubVerifier{subject: "u1"}, stubLoader{})

	for _, header := range []string{"Token abc", "Bearer", "bearer-token"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw(func(c echo.Context) error {
			t.Fatalf("should not reach next for header %q", header)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	mw := Auth(stubVerifier{err: domain.ErrInvalidToken}, stubLoader{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnknownSubject(t *testing.T) {
	e := echo.New()
	mw := Auth(stubVerifier{subject: "ghost"}, stubLoader{users: map[string]*domain.User{}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
