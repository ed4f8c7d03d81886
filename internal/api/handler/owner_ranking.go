package handler

import (
	"errors"
	"net/http"

	"github.com/devhub/pinche-admin-api/internal/usecases/ranking"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetOwnerRankingSnapshot retorna o ranking mensal salvo pelo agendador
func GetOwnerRankingSnapshot(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.GetOwnerRankingSnapshot(r.URL.Query().Get("month"))
		if errors.Is(err, ranking.ErrInvalidMonth) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		if err != nil {
			logrus.Error("Erro ao buscar ranking de motoristas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ranking de motoristas", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	}
}
