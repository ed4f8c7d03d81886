package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/utils"
	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rangeFilters struct {
	begin   *time.Time
	end     *time.Time
	ownerID *int64
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// parseDateRange lê begin e end da query. Um end só com data cobre o dia inteiro
func parseDateRange(r *http.Request) (begin, end *time.Time, ok bool) {
	query := r.URL.Query()

	begin, err := utils.ParseOptionalDate(query.Get("begin"))
	if err != nil {
		return nil, nil, false
	}

	endStr := query.Get("end")
	end, err = utils.ParseOptionalDate(endStr)
	if err != nil {
		return nil, nil, false
	}

	if end != nil && utils.IsDateOnly(endStr) {
		endOfDay := utils.EndOfDay(*end)
		end = &endOfDay
	}

	return begin, end, true
}

func parseOptionalID(value string) (*int64, bool) {
	if value == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}

	return &id, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := parseOptionalID(httprouter.ParamsFromContext(r.Context()).ByName(name))
	if !ok || id == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+name+" inválido", nil)
		return 0, false
	}
	return *id, true
}
