package handler

import (
	"net/http"

	"github.com/devhub/pinche-admin-api/internal/usecases/admin"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/log"
)

func readRangeFilters(w http.ResponseWriter, r *http.Request) (*rangeFilters, bool) {
	begin, end, ok := parseDateRange(r)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato 2006-01-02 ou RFC3339", nil)
		return nil, false
	}

	ownerID, ok := parseOptionalID(r.URL.Query().Get("owner_id"))
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "owner_id inválido", nil)
		return nil, false
	}

	return &rangeFilters{begin: begin, end: end, ownerID: ownerID}, true
}

// GetAdminInfos lista as caronas com partida no período
func GetAdminInfos(service admin.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := readRangeFilters(w, r)
		if !ok {
			return
		}

		infos, err := service.GetInfosInRange(filters.begin, filters.end, filters.ownerID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar caronas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar caronas", nil)
			return
		}

		writeJSON(w, http.StatusOK, infos)
	}
}

// GetAdminRecords lista os pedidos das caronas com partida no período
func GetAdminRecords(service admin.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := readRangeFilters(w, r)
		if !ok {
			return
		}

		orders, err := service.GetRecordsInRange(filters.begin, filters.end, filters.ownerID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao buscar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar pedidos", nil)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func GetOwnerRanking(service admin.AdminService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		begin, end, ok := parseDateRange(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato 2006-01-02 ou RFC3339", nil)
			return
		}

		ranking, err := service.GetOwnerRanking(begin, end)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao calcular ranking de motoristas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular ranking de motoristas", nil)
			return
		}

		writeJSON(w, http.StatusOK, ranking)
	}
}
