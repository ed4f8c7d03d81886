// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusBooked    OrderStatus = "booked"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFinished  OrderStatus = "finished"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order é a reserva de um passageiro em uma carona (Info)
type Order struct {
	ID          int64               `json:"id"`
	InfoID      int64               `json:"info_id"`
	PassengerID int64               `json:"passenger_id"`
	Code        string              `json:"code"`
	Price       decimal.NullDecimal `json:"price"` // Pode ser nulo; conta como zero na receita
	Seats       int                 `json:"seats"`
	Status      OrderStatus         `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusBooked, OrderStatusConfirmed, OrderStatusFinished, OrderStatusCancelled:
		return true
	}
	return false
}

// SumPrices soma os preços dos pedidos, ignorando preços nulos
func SumPrices(orders []*Order) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		if order == nil || !order.Price.Valid {
			continue
		}
		total = total.Add(order.Price.Decimal)
	}
	return total
}

// OptionalPrice distingue "price" ausente do corpo de "price": null
type OptionalPrice struct {
	Set   bool
	Value decimal.NullDecimal
}

func (p *OptionalPrice) UnmarshalJSON(data []byte) error {
	p.Set = true
	return p.Value.UnmarshalJSON(data)
}

// OrderUpdate são as alterações de um pedido; campos zerados e preço ausente não são gravados
type OrderUpdate struct {
	ID          int64         `json:"-"`
	InfoID      int64         `json:"info_id"`
	PassengerID int64         `json:"passenger_id"`
	Price       OptionalPrice `json:"price"`
	Seats       int           `json:"seats"`
	Status      OrderStatus   `json:"status"`
}
