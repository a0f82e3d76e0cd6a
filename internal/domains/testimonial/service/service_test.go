package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"armada/config"
	otelMocks "armada/infras/otel/mocks"
	"armada/internal/domains/testimonial/mocks"
	"armada/internal/domains/testimonial/model"
	"armada/internal/domains/testimonial/model/dto"
	"armada/internal/domains/testimonial/service"
	gDto "armada/shared/dto"
	"armada/shared/failure"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

var errCacheMiss = errors.New("cache miss")

// missCache always misses on reads and swallows writes, so the service path
// under test is the repository one. Writes happen on goroutines the service
// does not wait for, which rules out strict mock expectations here.
type missCache struct {
	mu sync.Mutex
}

func (c *missCache) Get(context.Context, string, any) error {
	return errCacheMiss
}

func (c *missCache) Save(context.Context, string, any, int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return nil
}

func (c *missCache) Delete(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return nil
}

func (c *missCache) Clear(context.Context, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return nil
}

func TestTestimonialService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, &missCache{}, otelMocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateTestimonialRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful create",
			req: dto.CreateTestimonialRequest{
				Name:    "Budi Santoso",
				Company: "PT Maju Jaya",
				Rating:  5,
				Comment: "Pelayanan sangat memuaskan",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateTestimonialRequest{
				Name:    "Sari Indah",
				Rating:  4,
				Comment: "Bus nyaman",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
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
				assert.Equal(t, tt.req.Rating, res.Rating)
			}
		})
	}
}

func TestTestimonialService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, &missCache{}, otelMocks.NewOtel())

	stored := model.Testimonial{
		ID:      "testimonial-1",
		Name:    "Budi Santoso",
		Company: "PT Maju Jaya",
		Rating:  5,
		Comment: "Pelayanan sangat memuaskan",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(stored, nil)

	res, err := svc.Get(context.Background(), "testimonial-1")
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", res.Name)
	assert.Equal(t, 5, res.Rating)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Testimonial{}, nil)

	_, err = svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestTestimonialService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, &missCache{}, otelMocks.NewOtel())

	stored := []model.Testimonial{
		{ID: "1", Name: "Budi Santoso", Rating: 5, Comment: "Mantap"},
		{ID: "2", Name: "Sari Indah", Rating: 4, Comment: "Nyaman"},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(stored, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Testimonials, 2)
}

func TestTestimonialService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, &missCache{}, otelMocks.NewOtel())

	err := svc.Update(context.Background(), dto.UpdateTestimonialRequest{}, "testimonial-1")
	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err = svc.Update(context.Background(), dto.UpdateTestimonialRequest{Rating: 3}, "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, svc.Update(context.Background(), dto.UpdateTestimonialRequest{Rating: 3}, "testimonial-1"))
}

func TestTestimonialService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTestimonial(ctrl)
	svc := service.New(mockRepo, &config.Config{}, &missCache{}, otelMocks.NewOtel())

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "testimonial-1"))
}
