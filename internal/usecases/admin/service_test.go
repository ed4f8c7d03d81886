package admin

import (
	"errors"
	"testing"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/repository/mocks"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	infoRepo  *mocks.MockInfoRepository
	orderRepo *mocks.MockOrderRepository
	userRepo  *mocks.MockUserRepository
	service   AdminService

	begin time.Time
	end   time.Time
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.infoRepo = mocks.NewMockInfoRepository(s.ctrl)
	s.orderRepo = mocks.NewMockOrderRepository(s.ctrl)
	s.userRepo = mocks.NewMockUserRepository(s.ctrl)
	s.service = NewService(s.infoRepo, s.orderRepo, s.userRepo)

	s.begin = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
}

func (s *AdminServiceTestSuite) filters(ownerID *int64) domain.RecordFilters {
	return domain.RecordFilters{Begin: &s.begin, End: &s.end, OwnerID: ownerID}
}

func price(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func int64Ptr(v int64) *int64 {
	return &v
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_InvalidRange() {
	later := s.end.Add(time.Hour)

	cases := []struct {
		name  string
		begin *time.Time
		end   *time.Time
	}{
		{name: "sem início", begin: nil, end: &s.end},
		{name: "sem fim", begin: &s.begin, end: nil},
		{name: "início depois do fim", begin: &later, end: &s.end},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			// Nenhuma chamada ao repositório é esperada
			orders, err := s.service.GetRecordsInRange(tc.begin, tc.end, nil)
			s.Require().NoError(err)
			s.NotNil(orders)
			s.Empty(orders)
		})
	}
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_SameInstantIsValid() {
	s.infoRepo.EXPECT().
		ListInfoIDs(domain.RecordFilters{Begin: &s.begin, End: &s.begin}).
		Return([]int64{}, nil)

	orders, err := s.service.GetRecordsInRange(&s.begin, &s.begin, nil)
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_AllOwners() {
	expected := []*domain.Order{
		{ID: 1, InfoID: 10, Price: price("20.00")},
		{ID: 2, InfoID: 11, Price: price("15.50")},
	}

	s.infoRepo.EXPECT().ListInfoIDs(s.filters(nil)).Return([]int64{10, 11}, nil)
	s.orderRepo.EXPECT().ListByInfoIDs([]int64{10, 11}).Return(expected, nil)

	orders, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.Require().NoError(err)
	s.Equal(expected, orders)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_SingleOwner() {
	ownerID := int64Ptr(7)
	expected := []*domain.Order{{ID: 3, InfoID: 20, Price: price("30")}}

	s.infoRepo.EXPECT().ListInfoIDs(s.filters(ownerID)).Return([]int64{20}, nil)
	s.orderRepo.EXPECT().ListByInfoIDs([]int64{20}).Return(expected, nil)

	orders, err := s.service.GetRecordsInRange(&s.begin, &s.end, ownerID)
	s.Require().NoError(err)
	s.Equal(expected, orders)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_NoInfosSkipsOrders() {
	s.infoRepo.EXPECT().ListInfoIDs(s.filters(nil)).Return([]int64{}, nil)

	orders, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.Require().NoError(err)
	s.Empty(orders)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_Idempotent() {
	expected := []*domain.Order{{ID: 1, InfoID: 10, Price: price("20")}}

	s.infoRepo.EXPECT().ListInfoIDs(s.filters(nil)).Return([]int64{10}, nil).Times(2)
	s.orderRepo.EXPECT().ListByInfoIDs([]int64{10}).Return(expected, nil).Times(2)

	first, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.Require().NoError(err)
	second, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_PersistenceErrorPropagates() {
	dbErr := errors.New("connection refused")
	s.infoRepo.EXPECT().ListInfoIDs(s.filters(nil)).Return(nil, dbErr)

	orders, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.Nil(orders)
	s.ErrorIs(err, ErrListRecords)
	s.ErrorIs(err, dbErr)
}

func (s *AdminServiceTestSuite) TestGetRecordsInRange_OrderErrorPropagates() {
	dbErr := errors.New("timeout")
	s.infoRepo.EXPECT().ListInfoIDs(s.filters(nil)).Return([]int64{1}, nil)
	s.orderRepo.EXPECT().ListByInfoIDs([]int64{1}).Return(nil, dbErr)

	_, err := s.service.GetRecordsInRange(&s.begin, &s.end, nil)
	s.ErrorIs(err, ErrListRecords)
	s.ErrorIs(err, dbErr)
}

func (s *AdminServiceTestSuite) TestGetInfosInRange() {
	ownerID := int64Ptr(3)
	expected := []*domain.Info{{ID: 1, OwnerID: 3, Origin: "Centro", Destination: "Campus"}}

	s.infoRepo.EXPECT().ListInfos(s.filters(ownerID)).Return(expected, nil)

	infos, err := s.service.GetInfosInRange(&s.begin, &s.end, ownerID)
	s.Require().NoError(err)
	s.Equal(expected, infos)
}

func (s *AdminServiceTestSuite) TestGetInfosInRange_InvalidRange() {
	infos, err := s.service.GetInfosInRange(&s.end, &s.begin, nil)
	s.Require().NoError(err)
	s.Empty(infos)
}

func (s *AdminServiceTestSuite) TestGetInfosInRange_Error() {
	dbErr := errors.New("boom")
	s.infoRepo.EXPECT().ListInfos(s.filters(nil)).Return(nil, dbErr)

	_, err := s.service.GetInfosInRange(&s.begin, &s.end, nil)
	s.ErrorIs(err, ErrListInfos)
	s.ErrorIs(err, dbErr)
}

// expectOwnerOrders registra as chamadas de um motorista com uma carona e os pedidos informados
func (s *AdminServiceTestSuite) expectOwnerOrders(ownerID int64, orders []*domain.Order) {
	infoID := ownerID * 100
	s.infoRepo.EXPECT().ListInfoIDs(s.filters(int64Ptr(ownerID))).Return([]int64{infoID}, nil)
	s.orderRepo.EXPECT().ListByInfoIDs([]int64{infoID}).Return(orders, nil)
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_DistinctTotals() {
	owners := []*domain.User{
		{ID: 2, Name: "Bruno"},
		{ID: 1, Name: "Ana"},
	}
	s.userRepo.EXPECT().ListOwners().Return(owners, nil)
	s.expectOwnerOrders(2, []*domain.Order{{Price: price("50")}})
	s.expectOwnerOrders(1, []*domain.Order{{Price: price("60")}, {Price: price("40")}})

	ranking, err := s.service.GetOwnerRanking(&s.begin, &s.end)
	s.Require().NoError(err)
	s.Require().Len(ranking, 2)

	s.Equal(int64(1), ranking[0].OwnerID)
	s.Equal(1, ranking[0].Position)
	s.True(decimal.NewFromInt(100).Equal(ranking[0].Total))

	s.Equal(int64(2), ranking[1].OwnerID)
	s.Equal(2, ranking[1].Position)
	s.True(decimal.NewFromInt(50).Equal(ranking[1].Total))
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_NullPriceCountsAsZero() {
	s.userRepo.EXPECT().ListOwners().Return([]*domain.User{{ID: 1, Name: "Ana"}}, nil)
	s.expectOwnerOrders(1, []*domain.Order{
		{Price: price("10.25")},
		{Price: decimal.NullDecimal{}},
		{Price: price("4.75")},
	})

	ranking, err := s.service.GetOwnerRanking(&s.begin, &s.end)
	s.Require().NoError(err)
	s.Require().Len(ranking, 1)
	s.True(decimal.NewFromInt(15).Equal(ranking[0].Total))
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_TiesKeepBothOwners() {
	s.userRepo.EXPECT().ListOwners().Return([]*domain.User{
		{ID: 3, Name: "Carla"},
		{ID: 1, Name: "Ana"},
	}, nil)
	s.expectOwnerOrders(3, []*domain.Order{{Price: price("100")}})
	s.expectOwnerOrders(1, []*domain.Order{{Price: price("100.00")}})

	ranking, err := s.service.GetOwnerRanking(&s.begin, &s.end)
	s.Require().NoError(err)
	s.Require().Len(ranking, 2)

	// Empate resolvido pelo id do motorista
	s.Equal(int64(1), ranking[0].OwnerID)
	s.Equal(int64(3), ranking[1].OwnerID)
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_CollapsedTiesKeepOnlyOne() {
	service := NewService(s.infoRepo, s.orderRepo, s.userRepo, WithCollapsedTies())

	s.userRepo.EXPECT().ListOwners().Return([]*domain.User{
		{ID: 1, Name: "Ana"},
		{ID: 2, Name: "Bruno"},
		{ID: 3, Name: "Carla"},
	}, nil)
	s.expectOwnerOrders(1, []*domain.Order{{Price: price("100")}})
	s.expectOwnerOrders(2, []*domain.Order{{Price: price("50")}})
	s.expectOwnerOrders(3, []*domain.Order{{Price: price("100")}})

	ranking, err := service.GetOwnerRanking(&s.begin, &s.end)
	s.Require().NoError(err)
	s.Require().Len(ranking, 2)

	s.Equal(int64(3), ranking[0].OwnerID)
	s.Equal(int64(2), ranking[1].OwnerID)
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_InvalidRangeRanksEveryoneAtZero() {
	s.userRepo.EXPECT().ListOwners().Return([]*domain.User{
		{ID: 2, Name: "Bruno"},
		{ID: 1, Name: "Ana"},
	}, nil)

	ranking, err := s.service.GetOwnerRanking(&s.end, &s.begin)
	s.Require().NoError(err)
	s.Require().Len(ranking, 2)
	s.Equal(int64(1), ranking[0].OwnerID)
	s.True(ranking[0].Total.IsZero())
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_ListOwnersError() {
	dbErr := errors.New("boom")
	s.userRepo.EXPECT().ListOwners().Return(nil, dbErr)

	ranking, err := s.service.GetOwnerRanking(&s.begin, &s.end)
	s.Nil(ranking)
	s.ErrorIs(err, ErrListOwners)
	s.ErrorIs(err, dbErr)
}

func (s *AdminServiceTestSuite) TestGetOwnerRanking_RecordErrorCarriesOwner() {
	dbErr := errors.New("boom")
	s.userRepo.EXPECT().ListOwners().Return([]*domain.User{{ID: 9, Name: "Ivo"}}, nil)
	s.infoRepo.EXPECT().ListInfoIDs(s.filters(int64Ptr(9))).Return(nil, dbErr)

	_, err := s.service.GetOwnerRanking(&s.begin, &s.end)

	var adminErr *AdminError
	s.Require().ErrorAs(err, &adminErr)
	s.Require().NotNil(adminErr.OwnerID)
	s.Equal(int64(9), *adminErr.OwnerID)
	s.Contains(err.Error(), "owner 9")
}
