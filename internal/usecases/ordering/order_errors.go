package ordering

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrInvalidOrder      = errors.New("pedido inválido")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// OrderError associa um erro do pacote ao pedido afetado e ao código de API
type OrderError struct {
	Err     error
	Code    string
	OrderID int64
	Details string
}

func (e *OrderError) Error() string {
	msg := e.Err.Error()
	if e.OrderID != 0 {
		msg = fmt.Sprintf("%s (pedido %d)", msg, e.OrderID)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	return msg
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func newOrderError(err error, code string, orderID int64, details string) *OrderError {
	return &OrderError{
		Err:     err,
		Code:    code,
		OrderID: orderID,
		Details: details,
	}
}
