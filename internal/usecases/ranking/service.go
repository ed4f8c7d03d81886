package ranking

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"fmt"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/repository"
	"github.com/devhub/pinche-admin-api/internal/domain"
)

// MonthLayout é o formato mm-yyyy usado como chave do snapshot
const MonthLayout = "01-2006"

type RankingService interface {
	GetOwnerRankingSnapshot(month string) (*domain.OwnerRankingSnapshotResponse, error)
}

type OwnerRankingService struct {
	OwnerRankingRepository repository.OwnerRankingRepository
	now                    func() time.Time
}

func NewOwnerRankingService(ownerRankingRepository repository.OwnerRankingRepository) RankingService {
	return &OwnerRankingService{
		OwnerRankingRepository: ownerRankingRepository,
		now:                    time.Now,
	}
}

// GetOwnerRankingSnapshot devolve o snapshot salvo do mês. Sem mês, usa o mês de ontem,
// que é o último calculado pelo agendador
func (s *OwnerRankingService) GetOwnerRankingSnapshot(month string) (*domain.OwnerRankingSnapshotResponse, error) {
	if month == "" {
		month = s.now().AddDate(0, 0, -1).Format(MonthLayout)
	}

	if _, err := time.Parse(MonthLayout, month); err != nil {
		return nil, ErrInvalidMonth
	}

	ranking, err := s.OwnerRankingRepository.GetByMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGetSnapshot, err)
	}

	return ranking, nil
}
