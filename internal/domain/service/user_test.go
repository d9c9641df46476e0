package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
	"github.com/diegoclair/wardrobe-notifier/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_userService_SyncTimezone(t *testing.T) {
	tests := []struct {
		name      string
		timezone  string
		buildMock func(mocks allMocks)
		wantErr   error
		wantValid bool
	}{
		{
			name:      "Should ignore an empty zone",
			timezone:  "",
			buildMock: func(mocks allMocks) {},
		},
		{
			name:     "Should store a known zone",
			timezone: "Europe/Lisbon",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().Upsert(gomock.Any(), &entity.User{ID: 3, Timezone: "Europe/Lisbon"}).Return(nil)
			},
		},
		{
			name:      "Should reject an unknown zone",
			timezone:  "Mars/Olympus_Mons",
			buildMock: func(mocks allMocks) {},
			wantValid: true,
		},
		{
			name:     "Should return storage errors",
			timezone: "UTC",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
			},
			wantErr: errors.New("failed to sync user timezone: database is locked"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			tt.buildMock(m)

			err := newUserService(m.mockDataManager).SyncTimezone(context.Background(), 3, tt.timezone)
			switch {
			case tt.wantValid:
				assert.True(t, domain.IsValidation(err))
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}
