package domain

import "time"

// RecordFilters delimita a janela de tempo (inclusiva) e, opcionalmente, o motorista
type RecordFilters struct {
	Begin   *time.Time
	End     *time.Time
	OwnerID *int64
}

// IsValidRange retorna falso quando falta alguma das datas ou o início é posterior ao fim
func (f RecordFilters) IsValidRange() bool {
	if f.Begin == nil || f.End == nil {
		return false
	}
	return !f.Begin.After(*f.End)
}
