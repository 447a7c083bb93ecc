package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pmurala/scholarship-portal/internal/lib/errs"
	"github.com/pmurala/scholarship-portal/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateScholarship(ctx context.Context, sch models.Scholarship) (string, error) {
	args := m.Called(ctx, sch)
	return args.String(0), args.Error(1)
}

func (m *RepoMock) UpdateScholarship(ctx context.Context, sch models.Scholarship, id string) (int, error) {
	args := m.Called(ctx, sch, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) ReadScholarship(ctx context.Context, id string) (*models.Scholarship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Scholarship), args.Error(1)
}

func (m *RepoMock) ListScholarships(ctx context.Context, filter models.ScholarshipFilter) ([]*models.Scholarship, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Scholarship), args.Error(1)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func makeLogger() *slog.Logger {
	return slog.New(discardHandler{})
}

func TestScholarshipService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("CreateScholarship", mock.Anything, mock.MatchedBy(func(s models.Scholarship) bool {
			return s.Name == "Merit" &&
				s.Amount == 2000 &&
				s.Deadline.Equal(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
		})).Return("sch-1", nil).Once()

		service := NewScholarshipService(repo, makeLogger())
		id, err := service.Create(ctx, models.DummyScholarship{
			Name:       "Merit",
			Amount:     2000,
			Deadline:   "2025-12-31",
			Department: "Engineering",
			Level:      "UG",
		})
		require.NoError(t, err)
		assert.Equal(t, "sch-1", id)
		repo.AssertExpectations(t)
	})

	t.Run("bad deadline format fails with ErrValidation", func(t *testing.T) {
		repo := new(RepoMock)
		service := NewScholarshipService(repo, makeLogger())

		_, err := service.Create(ctx, models.DummyScholarship{
			Name:       "Merit",
			Amount:     2000,
			Deadline:   "31-12-2025",
			Department: "Engineering",
			Level:      "UG",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
		repo.AssertNotCalled(t, "CreateScholarship")
	})

	t.Run("non-positive amount fails with ErrValidation", func(t *testing.T) {
		repo := new(RepoMock)
		service := NewScholarshipService(repo, makeLogger())

		_, err := service.Create(ctx, models.DummyScholarship{
			Name:       "Merit",
			Amount:     0,
			Deadline:   "2025-12-31",
			Department: "Engineering",
			Level:      "UG",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestScholarshipService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id fails with ErrNotFound", func(t *testing.T) {
		repo := new(RepoMock)
		repo.On("UpdateScholarship", mock.Anything, mock.Anything, "ghost").Return(0, nil).Once()

		service := NewScholarshipService(repo, makeLogger())
		err := service.Update(ctx, "ghost", models.DummyScholarship{
			Name:       "Merit",
			Amount:     2000,
			Deadline:   "2025-12-31",
			Department: "Engineering",
			Level:      "UG",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestScholarshipService_List(t *testing.T) {
	ctx := context.Background()

	repo := new(RepoMock)
	want := []*models.Scholarship{{ID: "sch-1", Name: "Merit"}}
	repo.On("ListScholarships", mock.Anything, models.ScholarshipFilter{
		Department: "Engineering",
		Name:       "merit",
	}).Return(want, nil).Once()

	service := NewScholarshipService(repo, makeLogger())

	// Подстрока названия очищается от окружающих пробелов
	got, err := service.List(ctx, models.ScholarshipFilter{
		Department: "Engineering",
		Name:       "  merit ",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScholarship_DeadlineDerivation(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		deadline    time.Time
		wantExpired bool
		wantDays    int
	}{
		{
			name:        "future deadline",
			deadline:    time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
			wantExpired: false,
			wantDays:    10,
		},
		{
			name:        "deadline today",
			deadline:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantExpired: false,
			wantDays:    0,
		},
		{
			name:        "passed deadline",
			deadline:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			wantExpired: true,
			wantDays:    -1978,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := models.Scholarship{Deadline: tt.deadline}
			assert.Equal(t, tt.wantExpired, s.Expired(now))
			assert.Equal(t, tt.wantDays, s.DaysLeft(now))
		})
	}
}
