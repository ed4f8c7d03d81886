package domain

import "time"

type InfoStatus string

const (
	InfoStatusOpen     InfoStatus = "open"
	InfoStatusFull     InfoStatus = "full"
	InfoStatusClosed   InfoStatus = "closed"
	InfoStatusCanceled InfoStatus = "cancelled"
)

// Info é uma oferta de carona publicada por um motorista
type Info struct {
	ID            int64      `json:"id"`
	OwnerID       int64      `json:"owner_id"`
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureTime time.Time  `json:"departure_time"`
	Seats         int        `json:"seats"`
	Status        InfoStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}
