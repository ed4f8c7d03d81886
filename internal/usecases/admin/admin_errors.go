package admin

import (
	"errors"
	"fmt"
)

var (
	ErrListOwners  = errors.New("error listing owners")
	ErrListInfos   = errors.New("error listing ride infos")
	ErrListRecords = errors.New("error listing ride records")
)

// AdminError associa a falha de persistência (Cause) a um dos erros do pacote (Err).
// errors.Is funciona para ambos
type AdminError struct {
	Err     error
	Cause   error
	OwnerID *int64
}

func (e *AdminError) Error() string {
	msg := e.Err.Error()
	if e.OwnerID != nil {
		msg = fmt.Sprintf("%s (owner %d)", msg, *e.OwnerID)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

func (e *AdminError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newAdminError(err error, cause error, ownerID *int64) *AdminError {
	return &AdminError{
		Err:     err,
		Cause:   cause,
		OwnerID: ownerID,
	}
}
