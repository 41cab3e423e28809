package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avega-dev/cronogramas/internal/apperr"
	"github.com/avega-dev/cronogramas/internal/auth"
	"github.com/avega-dev/cronogramas/internal/domain/user"
	"github.com/avega-dev/cronogramas/internal/http/handlers"
	"github.com/avega-dev/cronogramas/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

// Make sure Gin does not spam the console during the test
func init() {
	gin.SetMode(gin.TestMode)
}

// Fake implementation of the handlers.IdentityService interface

type fakeIdentity struct {
	registerFn func(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error)
	loginFn    func(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error)
	currentFn  func(ctx context.Context, id int64) (user.Usuario, error)
	isCoordFn  func(ctx context.Context, id int64) (bool, error)
}

func (f *fakeIdentity) Register(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return user.Usuario{}, "", nil
}

func (f *fakeIdentity) Login(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return user.Usuario{}, "", nil
}

func (f *fakeIdentity) CurrentAccount(ctx context.Context, id int64) (user.Usuario, error) {
	if f.currentFn != nil {
		return f.currentFn(ctx, id)
	}
	return user.Usuario{}, nil
}

func (f *fakeIdentity) IsCoordinator(ctx context.Context, id int64) (bool, error) {
	if f.isCoordFn != nil {
		return f.isCoordFn(ctx, id)
	}
	return false, nil
}

var testJWT = auth.NewManager("test-secret", time.Hour)

func bearerFor(t *testing.T, userID int64, rol string) string {
	t.Helper()

	token, err := testJWT.GenerateAccessToken(userID, rol)

	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return "Bearer " + token
}

func doJSON(r http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func demoUsuario(id int64, rol string) user.Usuario {
	return user.Usuario{
		ID:            id,
		Nombre:        "Ana",
		Email:         "ana@x.com",
		Rol:           rol,
		FechaRegistro: time.Now().UTC(),
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*fakeIdentity)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"nombre":"Ana","email":"ana@x.com","password":"pw1","rol":"maestro"}`,
			setup: func(f *fakeIdentity) {
				f.registerFn = func(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
					return demoUsuario(1, req.Rol), "tok", nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "missing_field_bind",
			body:           `{"nombre":"Ana"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "invalid_rol",
			body: `{"nombre":"Ana","email":"ana@x.com","password":"pw1","rol":"admin"}`,
			setup: func(f *fakeIdentity) {
				f.registerFn = func(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
					return user.Usuario{}, "", apperr.Validation("El rol debe ser 'maestro' o 'coordinador'")
				}
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "email_taken",
			body: `{"nombre":"Ana","email":"ana@x.com","password":"pw1","rol":"maestro"}`,
			setup: func(f *fakeIdentity) {
				f.registerFn = func(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
					return user.Usuario{}, "", apperr.Conflict("email_taken", "El email ya está registrado")
				}
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "store_error",
			body: `{"nombre":"Ana","email":"ana@x.com","password":"pw1","rol":"maestro"}`,
			setup: func(f *fakeIdentity) {
				f.registerFn = func(ctx context.Context, req user.RegisterRequest) (user.Usuario, string, error) {
					return user.Usuario{}, "", errors.New("db down")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeIdentity{}

			if tt.setup != nil {
				tt.setup(fake)
			}

			h := handlers.NewAuthHandler(fake)
			r := gin.New()
			r.POST("/auth/register", h.Register)

			w := doJSON(r, http.MethodPost, "/auth/register", tt.body, "")

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusCreated {
				var resp struct {
					AccessToken string `json:"access_token"`
					Usuario     struct {
						ID int64 `json:"id"`
					} `json:"usuario"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v body=%s", err, w.Body.String())
				}
				if resp.AccessToken == "" || resp.Usuario.ID == 0 {
					t.Fatalf("missing token or usuario in body: %s", w.Body.String())
				}
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*fakeIdentity)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"email":"ana@x.com","password":"pw1"}`,
			setup: func(f *fakeIdentity) {
				f.loginFn = func(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error) {
					return demoUsuario(1, "maestro"), "tok", nil
				}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "bad_credentials",
			body: `{"email":"ana@x.com","password":"wrong"}`,
			setup: func(f *fakeIdentity) {
				f.loginFn = func(ctx context.Context, req user.LoginRequest) (user.Usuario, string, error) {
					return user.Usuario{}, "", apperr.Unauthorized("invalid_credentials", "Credenciales inválidas")
				}
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "missing_password_bind",
			body:           `{"email":"ana@x.com"}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeIdentity{}

			if tt.setup != nil {
				tt.setup(fake)
			}

			h := handlers.NewAuthHandler(fake)
			r := gin.New()
			r.POST("/auth/login", h.Login)

			w := doJSON(r, http.MethodPost, "/auth/login", tt.body, "")

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestMeHandler(t *testing.T) {
	fake := &fakeIdentity{
		currentFn: func(ctx context.Context, id int64) (user.Usuario, error) {
			if id != 7 {
				return user.Usuario{}, apperr.NotFound("Usuario no encontrado")
			}
			return demoUsuario(7, "maestro"), nil
		},
	}

	h := handlers.NewAuthHandler(fake)
	mw := middlewares.NewAuthMiddleware(testJWT)

	r := gin.New()
	r.GET("/auth/me", mw.RequireAuth(), h.Me)

	// valid token, live account
	w := doJSON(r, http.MethodGet, "/auth/me", "", bearerFor(t, 7, "maestro"))

	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200, body=%s", w.Code, w.Body.String())
	}

	var u user.Usuario
	if err := json.Unmarshal(w.Body.Bytes(), &u); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("got usuario id %d, want 7", u.ID)
	}

	// valid token, account gone
	w = doJSON(r, http.MethodGet, "/auth/me", "", bearerFor(t, 99, "maestro"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404, body=%s", w.Code, w.Body.String())
	}

	// no token
	w = doJSON(r, http.MethodGet, "/auth/me", "", "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401, body=%s", w.Code, w.Body.String())
	}
}

func TestIsCoordinatorHandler(t *testing.T) {
	fake := &fakeIdentity{
		isCoordFn: func(ctx context.Context, id int64) (bool, error) {
			switch id {
			case 1:
				return false, nil
			case 2:
				return true, nil
			default:
				return false, apperr.NotFound("Usuario no encontrado")
			}
		},
	}

	h := handlers.NewAuthHandler(fake)
	mw := middlewares.NewAuthMiddleware(testJWT)

	r := gin.New()
	r.GET("/auth/is-coordinator", mw.RequireAuth(), h.IsCoordinator)

	tests := []struct {
		name       string
		userID     int64
		rol        string
		wantStatus int
		wantCoord  bool
	}{
		{"maestro", 1, "maestro", http.StatusOK, false},
		{"coordinador", 2, "coordinador", http.StatusOK, true},
		{"missing_account", 99, "maestro", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodGet, "/auth/is-coordinator", "", bearerFor(t, tt.userID, tt.rol))

			if w.Code != tt.wantStatus {
				t.Fatalf("got %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantStatus == http.StatusOK {
				var resp struct {
					IsCoordinator bool `json:"is_coordinator"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal: %v", err)
				}
				if resp.IsCoordinator != tt.wantCoord {
					t.Fatalf("got is_coordinator=%v, want %v", resp.IsCoordinator, tt.wantCoord)
				}
			}
		})
	}
}
