package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		header         string
		validator      fakeValidator
		expectedStatus int
	}{
		{
			name:           "Sem cabeçalho Authorization",
			path:           "/v1/admin/records",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Cabeçalho sem Bearer",
			path:           "/v1/admin/records",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token inválido",
			path:           "/v1/admin/records",
			header:         "Bearer xyz",
			validator:      fakeValidator{err: errors.New("invalid token")},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token válido",
			path:           "/v1/admin/records",
			header:         "Bearer xyz",
			validator:      fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_ErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "Token expirado",
			err:          fmt.Errorf("token inválido: %w", jwt.ErrTokenExpired),
			expectedCode: apiErrors.ErrExpiredToken,
		},
		{
			name:         "Assinatura inválida",
			err:          fmt.Errorf("token inválido: %w", jwt.ErrSignatureInvalid),
			expectedCode: apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/records", nil)
			req.Header.Set("Authorization", "Bearer xyz")
			rec := httptest.NewRecorder()

			AuthMiddleware(fakeValidator{err: tt.err})(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedCode)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name           string
		validator      fakeValidator
		expectedStatus int
	}{
		{
			name:           "Administrador tem acesso",
			validator:      fakeValidator{claims: &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Motorista não tem acesso",
			validator:      fakeValidator{claims: &domain.Claims{UserID: 2, UserRoleID: domain.RoleOwner}},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/records", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()

			handler := AuthMiddleware(tt.validator)(AdminOnly()(okHandler()))
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAdminOnly_WithoutClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/records", nil)
	rec := httptest.NewRecorder()

	AdminOnly()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()

	LoggingMiddleware()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestCors(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	Cors()(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
