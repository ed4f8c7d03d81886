// Package ordering expõe o CRUD de pedidos (reservas de assento em uma carona)
package ordering

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"errors"

	"github.com/devhub/pinche-admin-api/infrastructure/repository"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/pkg/apiErrors"
	"github.com/devhub/pinche-admin-api/pkg/log"
	"github.com/devhub/pinche-admin-api/pkg/utils"
)

// Tentativas de gerar um código de pedido ainda não usado
const codeAttempts = 3

type OrderService interface {
	Create(order *domain.Order) (*domain.Order, error)
	Update(update *domain.OrderUpdate) error
	Delete(id int64) error
	Get(id int64) (*domain.Order, error)
	List() ([]*domain.Order, error)
	ListByInfo(infoID int64) ([]*domain.Order, error)
}

type Service struct {
	orderRepo repository.OrderRepository
}

func NewService(orderRepo repository.OrderRepository) OrderService {
	return &Service{
		orderRepo: orderRepo,
	}
}

func validate(order *domain.Order) error {
	if order == nil {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidRequest, 0, "corpo vazio")
	}
	if order.InfoID <= 0 || order.PassengerID <= 0 {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, order.ID, "carona e passageiro são obrigatórios")
	}
	if order.Seats < 0 {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, order.ID, "quantidade de assentos inválida")
	}
	if order.Price.Valid && order.Price.Decimal.IsNegative() {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, order.ID, "preço negativo")
	}
	if order.Status != "" && !order.Status.IsValid() {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, order.ID, "status desconhecido")
	}
	return nil
}

func (s *Service) Create(order *domain.Order) (*domain.Order, error) {
	if err := validate(order); err != nil {
		return nil, err
	}

	if order.Status == "" {
		order.Status = domain.OrderStatusBooked
	}
	if order.Seats == 0 {
		order.Seats = 1
	}

	var id int64
	for attempt := 1; ; attempt++ {
		code, err := utils.GenerateID()
		if err != nil {
			return nil, newOrderError(err, apiErrors.ErrInternalServer, 0, "erro ao gerar código do pedido")
		}
		order.Code = code

		id, err = s.orderRepo.Insert(order)
		if err == nil {
			break
		}
		if errors.Is(err, repository.ErrDuplicateKey) && attempt < codeAttempts {
			log.L.WithField("order_code", code).Warn("Código de pedido já existe, gerando outro")
			continue
		}
		return nil, newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, err.Error())
	}
	order.ID = id

	log.L.WithFields(log.Fields{
		"order_id":   id,
		"order_code": order.Code,
		"info_id":    order.InfoID,
	}).Info("Pedido criado")

	return order, nil
}

func (s *Service) Update(update *domain.OrderUpdate) error {
	if update == nil || update.ID <= 0 {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidRequest, 0, "id é obrigatório")
	}
	price := update.Price.Value
	if update.Seats < 0 || update.InfoID < 0 || update.PassengerID < 0 || (price.Valid && price.Decimal.IsNegative()) {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, update.ID, "valores inválidos")
	}
	if update.Status != "" && !update.Status.IsValid() {
		return newOrderError(ErrInvalidOrder, apiErrors.ErrInvalidOrder, update.ID, "status desconhecido")
	}

	affected, err := s.orderRepo.UpdateByID(update)
	if err != nil {
		return newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, update.ID, err.Error())
	}
	if affected == 0 {
		return newOrderError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, update.ID, "")
	}

	return nil
}

func (s *Service) Delete(id int64) error {
	affected, err := s.orderRepo.DeleteByID(id)
	if err != nil {
		return newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if affected == 0 {
		return newOrderError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, id, "")
	}

	log.L.WithField("order_id", id).Info("Pedido removido")
	return nil
}

func (s *Service) Get(id int64) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if order == nil {
		return nil, newOrderError(ErrOrderNotFound, apiErrors.ErrOrderNotFound, id, "")
	}

	return order, nil
}

func (s *Service) List() ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListAll()
	if err != nil {
		return nil, newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, err.Error())
	}

	return orders, nil
}

func (s *Service) ListByInfo(infoID int64) ([]*domain.Order, error) {
	orders, err := s.orderRepo.ListByInfoID(infoID)
	if err != nil {
		return nil, newOrderError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, 0, err.Error())
	}

	return orders, nil
}
