package handler

import (
	"errors"
	"net/http"

	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/internal/usecases/ordering"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/log"
)

func writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	var orderErr *ordering.OrderError
	if errors.As(err, &orderErr) {
		if orderErr.Code == apiErrors.ErrDatabaseOperation {
			log.ForContext(r.Context()).WithError(err).Error("Erro de banco ao processar pedido")
			apiErrors.WriteError(w, orderErr.Code, "Erro ao processar pedido", nil)
			return
		}
		apiErrors.WriteError(w, orderErr.Code, orderErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado ao processar pedido")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar pedido", nil)
}

func decodeOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return nil, false
	}
	return &order, true
}

func ListOrders(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := service.List()
		if err != nil {
			writeOrderError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func CreateOrder(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, ok := decodeOrder(w, r)
		if !ok {
			return
		}

		created, err := service.Create(order)
		if err != nil {
			writeOrderError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func GetOrder(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		order, err := service.Get(id)
		if err != nil {
			writeOrderError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

// UpdateOrder aplica os campos informados; o id vem sempre da URL
func UpdateOrder(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var update domain.OrderUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		update.ID = id

		if err := service.Update(&update); err != nil {
			writeOrderError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteOrder(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(id); err != nil {
			writeOrderError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListOrdersByInfo(service ordering.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infoID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		orders, err := service.ListByInfo(infoID)
		if err != nil {
			writeOrderError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}
