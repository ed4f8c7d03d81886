package ranking

import (
	"errors"
	"testing"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/repository/mocks"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetOwnerRankingSnapshot(t *testing.T) {
	tests := []struct {
		name        string
		month       string
		now         time.Time
		setupMock   func(m *mocks.MockOwnerRankingRepository)
		expectedErr error
	}{
		{
			name:  "Mês informado",
			month: "02-2024",
			now:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			setupMock: func(m *mocks.MockOwnerRankingRepository) {
				m.EXPECT().GetByMonth("02-2024").Return(&domain.OwnerRankingSnapshotResponse{Month: "02-2024"}, nil)
			},
		},
		{
			name:  "Sem mês no primeiro dia usa o mês anterior",
			month: "",
			now:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			setupMock: func(m *mocks.MockOwnerRankingRepository) {
				m.EXPECT().GetByMonth("02-2024").Return(&domain.OwnerRankingSnapshotResponse{Month: "02-2024"}, nil)
			},
		},
		{
			name:  "Sem mês no meio do mês usa o mês corrente",
			month: "",
			now:   time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			setupMock: func(m *mocks.MockOwnerRankingRepository) {
				m.EXPECT().GetByMonth("03-2024").Return(&domain.OwnerRankingSnapshotResponse{Month: "03-2024"}, nil)
			},
		},
		{
			name:        "Mês em formato inválido",
			month:       "2024-02",
			now:         time.Now(),
			setupMock:   func(m *mocks.MockOwnerRankingRepository) {},
			expectedErr: ErrInvalidMonth,
		},
		{
			name:  "Erro do repositório",
			month: "02-2024",
			now:   time.Now(),
			setupMock: func(m *mocks.MockOwnerRankingRepository) {
				m.EXPECT().GetByMonth("02-2024").Return(nil, errors.New("db down"))
			},
			expectedErr: ErrGetSnapshot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockOwnerRankingRepository(ctrl)
			tt.setupMock(repo)

			service := &OwnerRankingService{
				OwnerRankingRepository: repo,
				now:                    func() time.Time { return tt.now },
			}

			result, err := service.GetOwnerRankingSnapshot(tt.month)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}
