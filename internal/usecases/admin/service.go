package admin

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/repository"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/pkg/log"
	"github.com/pkg/errors"
)

type AdminService interface {
	// GetInfosInRange lista as caronas com partida dentro de [begin, end], opcionalmente de um motorista
	GetInfosInRange(begin, end *time.Time, ownerID *int64) ([]*domain.Info, error)

	// GetRecordsInRange lista os pedidos das caronas com partida dentro de [begin, end]
	GetRecordsInRange(begin, end *time.Time, ownerID *int64) ([]*domain.Order, error)

	// GetOwnerRanking ordena os motoristas pela receita total no período, da maior para a menor
	GetOwnerRanking(begin, end *time.Time) ([]*domain.OwnerRankingItem, error)
}

type Service struct {
	infoRepo     repository.InfoRepository
	orderRepo    repository.OrderRepository
	userRepo     repository.UserRepository
	collapseTies bool
}

type Option func(*Service)

// WithCollapsedTies reproduz o ranking antigo, indexado pelo total: motoristas com o mesmo
// total colidem e apenas o último da lista de motoristas permanece
func WithCollapsedTies() Option {
	return func(s *Service) {
		s.collapseTies = true
	}
}

func NewService(
	infoRepo repository.InfoRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	opts ...Option,
) AdminService {
	s := &Service{
		infoRepo:  infoRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) GetInfosInRange(begin, end *time.Time, ownerID *int64) ([]*domain.Info, error) {
	filters := domain.RecordFilters{Begin: begin, End: end, OwnerID: ownerID}
	if !filters.IsValidRange() {
		return []*domain.Info{}, nil
	}

	infos, err := s.infoRepo.ListInfos(filters)
	if err != nil {
		return nil, newAdminError(ErrListInfos, errors.Wrap(err, "admin: erro ao buscar caronas"), ownerID)
	}

	return infos, nil
}

func (s *Service) GetRecordsInRange(begin, end *time.Time, ownerID *int64) ([]*domain.Order, error) {
	filters := domain.RecordFilters{Begin: begin, End: end, OwnerID: ownerID}
	if !filters.IsValidRange() {
		return []*domain.Order{}, nil
	}

	infoIDs, err := s.infoRepo.ListInfoIDs(filters)
	if err != nil {
		return nil, newAdminError(ErrListRecords, errors.Wrap(err, "admin: erro ao buscar ids das caronas"), ownerID)
	}

	if len(infoIDs) == 0 {
		return []*domain.Order{}, nil
	}

	orders, err := s.orderRepo.ListByInfoIDs(infoIDs)
	if err != nil {
		return nil, newAdminError(ErrListRecords, errors.Wrap(err, "admin: erro ao buscar pedidos"), ownerID)
	}

	return orders, nil
}

func (s *Service) GetOwnerRanking(begin, end *time.Time) ([]*domain.OwnerRankingItem, error) {
	owners, err := s.userRepo.ListOwners()
	if err != nil {
		return nil, newAdminError(ErrListOwners, errors.Wrap(err, "admin: erro ao buscar motoristas"), nil)
	}

	totals := make([]ownerTotal, 0, len(owners))
	for _, owner := range owners {
		ownerID := owner.ID

		orders, err := s.GetRecordsInRange(begin, end, &ownerID)
		if err != nil {
			return nil, err
		}

		totals = append(totals, ownerTotal{
			owner: owner,
			total: domain.SumPrices(orders),
		})
	}

	ranking := rankOwners(totals, s.collapseTies)

	log.L.WithFields(log.Fields{
		"owners_total":  len(owners),
		"owners_ranked": len(ranking),
		"collapse_ties": s.collapseTies,
	}).Debug("admin: ranking de motoristas calculado")

	return ranking, nil
}
