package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/internal/usecases/authenticating"
	authmocks "github.com/devhub/pinche-admin-api/internal/usecases/authenticating/mocks"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *authmocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Login com sucesso",
			body: `{"email":"admin@pinche.com","password":"senha"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser("admin@pinche.com", "senha").Return("jwt-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "jwt-token",
		},
		{
			name: "Usuário inexistente não é revelado",
			body: `{"email":"x@pinche.com","password":"senha"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "Motorista recebe 403",
			body: `{"email":"motorista@pinche.com","password":"senha"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege, ""))
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "Erro não tipado vira 500",
			body: `{"email":"admin@pinche.com","password":"senha"}`,
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "Corpo inválido",
			body:           `email=admin`,
			setupMock:      func(m *authmocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			Login(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		setupMock      func(m *authmocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Perfil do administrador",
			claims: &domain.Claims{UserID: 1},
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUserProfile(int64(1)).Return(&domain.User{ID: 1, Name: "Admin", RoleID: domain.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Admin",
		},
		{
			name:   "Usuário removido após o login",
			claims: &domain.Claims{UserID: 99},
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUserProfile(int64(99)).
					Return(nil, authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   apiErrors.ErrUserNotFound,
		},
		{
			name:   "Usuário desativado",
			claims: &domain.Claims{UserID: 7},
			setupMock: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().GetUserProfile(int64(7)).
					Return(nil, authenticating.NewAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, ""))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   apiErrors.ErrUserDisabled,
		},
		{
			name:           "Sem claims no contexto",
			setupMock:      func(m *authmocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   apiErrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authmocks.NewMockAuthenticator(ctrl)
			tt.setupMock(service)

			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			GetMe(service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
