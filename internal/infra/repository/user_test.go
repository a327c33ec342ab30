//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"turnera/internal/domain/user"
	"turnera/internal/infra"
	"turnera/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserWriteQueries) UpdateUserRole(ctx context.Context, db query.DBTX, id uuid.UUID, role string) (int64, error) {
	args := m.Called(ctx, db, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserForUpdate(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockUserWriteQueries) UpdateUser(ctx context.Context, db query.DBTX, arg query.UpdateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// query.DBTX implementation for MockUserWriteQueries
func (m *MockUserWriteQueries) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockUserWriteQueries) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func TestUpdateRole(t *testing.T) {
	testUserID := uuid.New()

	tests := []struct {
		name      string
		rows      int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "success",
			rows: 1,
		},
		{
			name:     "user not found",
			rows:     0,
			wantKind: infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserWriteQueries)
			mockQueries.On("UpdateUserRole", mock.Anything, mock.Anything, testUserID, "entrepreneur").
				Return(tt.rows, tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateRole(context.Background(), mockQueries, testUserID, user.RoleEntrepreneur)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindForUpdate(t *testing.T) {
	testUserID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserForUpdate", mock.Anything, mock.Anything, testUserID).Return(query.User{
			ID:           testUserID,
			Email:        "ana@example.com",
			Username:     "ana_b",
			PasswordHash: "hash",
			Role:         "entrepreneur",
			FirstName:    pgtype.Text{String: "Ana", Valid: true},
		}, nil)

		u, err := NewUserRepository(mockQueries).FindForUpdate(context.Background(), mockQueries, testUserID)
		require.NoError(t, err)
		assert.Equal(t, testUserID, u.ID())
		assert.Equal(t, user.RoleEntrepreneur, u.Role())
		assert.Equal(t, "Ana", *u.FirstName())
		assert.Nil(t, u.LastName())
	})

	t.Run("user not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserForUpdate", mock.Anything, mock.Anything, testUserID).Return(query.User{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindForUpdate(context.Background(), mockQueries, testUserID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("stored role is invalid", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("GetUserForUpdate", mock.Anything, mock.Anything, testUserID).Return(query.User{
			ID: testUserID, Email: "ana@example.com", Username: "ana_b", Role: "admin",
		}, nil)

		_, err := NewUserRepository(mockQueries).FindForUpdate(context.Background(), mockQueries, testUserID)
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestUpdateUser(t *testing.T) {
	email, _ := user.NewEmail("ana@example.com")
	username, _ := user.NewUsername("ana_b")
	u := user.NewUser(email, username, "hash", nil, nil, time.Now())

	t.Run("duplicate email keeps its constraint", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(arg query.UpdateUserParams) bool {
			return arg.ID == u.ID() && arg.Email == "ana@example.com"
		})).Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		err := NewUserRepository(mockQueries).Update(context.Background(), mockQueries, u)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "users_email_key", infra.ConstraintOf(err))
	})

	t.Run("user not found", func(t *testing.T) {
		mockQueries := new(MockUserWriteQueries)
		mockQueries.On("UpdateUser", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewUserRepository(mockQueries).Update(context.Background(), mockQueries, u)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
