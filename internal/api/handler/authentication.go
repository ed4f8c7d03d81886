package handler

import (
	"errors"
	"net/http"

	"github.com/devhub/pinche-admin-api/internal/usecases/authenticating"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna o perfil do administrador logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if errors.Is(err, authenticating.ErrUserNotFound) {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// handleAuthError não revela ao cliente se o email existe no login
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if !errors.As(err, &authErr) {
		logrus.WithError(err).Error("Erro inesperado na autenticação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrUserNotFound), errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Email ou senha incorretos", nil)
	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Conta desativada", nil)
	case errors.Is(err, authenticating.ErrInsufficientPrivilege):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso restrito a administradores", nil)
	case errors.Is(err, authenticating.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, authErr.Details, nil)
	default:
		logrus.WithError(err).Error("Erro na autenticação")
		apiErrors.WriteError(w, authErr.Code, "Erro ao autenticar", nil)
	}
}
