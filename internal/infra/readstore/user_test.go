//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"turnera/internal/infra"
	"turnera/internal/infra/query"
	"turnera/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	entrepreneur := builder.NewUserBuilder().
		WithEmail("owner@example.com").
		WithFirstName("Lucía").
		AsEntrepreneur().
		BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn query.User
		mockError  error
		wantHash   string
		wantError  bool
	}{
		{
			name:       "success - customer",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - entrepreneur with first name",
			email:      entrepreneur.Email,
			mockReturn: entrepreneur,
			wantHash:   entrepreneur.PasswordHash,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: query.User{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: query.User{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.Role, view.Role)
				assert.Equal(t, tt.wantHash, hash)
				if tt.mockReturn.FirstName.Valid {
					if assert.NotNil(t, view.FirstName) {
						assert.Equal(t, tt.mockReturn.FirstName.String, *view.FirstName)
					}
				} else {
					assert.Nil(t, view.FirstName)
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn query.User
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     uuid.New(),
			mockReturn: query.User{},
			mockError:  sql.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: query.User{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, testUser.Username, view.Username)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
