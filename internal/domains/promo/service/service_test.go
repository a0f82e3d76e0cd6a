package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/internal/domains/promo/mocks"
	"armada/internal/domains/promo/model"
	"armada/internal/domains/promo/model/dto"
	"armada/internal/domains/promo/service"
	"armada/shared"
	"armada/shared/failure"
)

func TestPromoService_CreateRejectsDuplicateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPromo(ctrl)
	svc := service.New(mockRepo, &config.Config{}, otelMocks.NewOtel())

	// The uniqueness check runs against the normalized code.
	mockRepo.EXPECT().
		Exist(gomock.Any(), shared.FilterByID("LEBARAN25", model.FieldKodePromo, model.TableName)).
		Return(true, nil)

	_, err := svc.Create(context.Background(), dto.CreatePromoRequest{
		KodePromo:   "lebaran 25",
		JenisDiskon: "persen",
		NilaiDiskon: 10,
	})
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestPromoService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockPromo(ctrl)
	svc := service.New(mockRepo, &config.Config{}, otelMocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreatePromoRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful create",
			req: dto.CreatePromoRequest{
				KodePromo:   "Mudik 2025",
				Deskripsi:   "Diskon mudik lebaran",
				JenisDiskon: "persen",
				NilaiDiskon: 15,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), shared.FilterByID("MUDIK2025", model.FieldKodePromo, model.TableName)).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "uniqueness check fails",
			req: dto.CreatePromoRequest{
				KodePromo:   "GAGAL",
				JenisDiskon: "tetap",
				NilaiDiskon: 50000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "MUDIK2025", res.KodePromo)
			}
		})
	}
}
