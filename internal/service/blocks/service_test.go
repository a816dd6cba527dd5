package blocks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	blockRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/manualblock"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	blocks  map[int64]*domain.ManualBlock
	nextID  int64
	deleted []int64
	listErr error
	filter  domain.ManualBlocksFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{blocks: make(map[int64]*domain.ManualBlock), nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, b *domain.ManualBlock) (*domain.ManualBlock, error) {
	b.ID = r.nextID
	r.nextID++
	r.blocks[b.ID] = b
	return b, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.ManualBlock, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, blockRepo.ErrBlockNotFound
	}
	return b, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.ManualBlocksFilter) ([]*domain.ManualBlock, error) {
	r.filter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.ManualBlock, 0, len(r.blocks))
	for _, b := range r.blocks {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.blocks, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeTx struct {
	calls int
}

func (tx *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

func validRequest() *models.CreateBlockRequest {
	return &models.CreateBlockRequest{
		UserID:    7,
		ProjectID: 42,
		StartsAt:  time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2026, 10, 20, 13, 0, 0, 0, time.UTC),
	}
}

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeTx{}, nopLogger{})

	resp, err := svc.Create(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "manual", resp.Reason)
	assert.Equal(t, int64(7), resp.CreatedBy)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.CreateBlockRequest)
		wantErr error
	}{
		{name: "anonymous", mutate: func(r *models.CreateBlockRequest) { r.UserID = 0 }, wantErr: ErrAccessDenied},
		{name: "end before start", mutate: func(r *models.CreateBlockRequest) { r.EndsAt = r.StartsAt.Add(-time.Hour) }, wantErr: ErrInvalidTimeRange},
		{name: "empty range", mutate: func(r *models.CreateBlockRequest) { r.EndsAt = r.StartsAt }, wantErr: ErrInvalidTimeRange},
		{name: "longer than a year", mutate: func(r *models.CreateBlockRequest) { r.EndsAt = r.StartsAt.AddDate(0, 0, 367) }, wantErr: ErrInvalidTimeRange},
		{name: "long reason", mutate: func(r *models.CreateBlockRequest) { r.Reason = ptr.Ptr(strings.Repeat("я", 501)) }, wantErr: ErrInvalidInput},
		{name: "missing project", mutate: func(r *models.CreateBlockRequest) { r.ProjectID = 0 }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, &fakeTx{}, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.blocks)
		})
	}
}

func TestService_CreateReasonAtLimit(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeTx{}, nopLogger{})
	req := validRequest()
	req.Reason = ptr.Ptr(strings.Repeat("я", 500))

	resp, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	assert.Len(t, []rune(resp.Reason), 500)
}

func TestService_List(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeTx{}, nopLogger{})
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{UserID: 7, ProjectID: 42, From: &from})

	require.NoError(t, err)
	assert.Len(t, resp.Blocks, 1)
	assert.Equal(t, int64(42), repo.filter.ProjectID)
	assert.Equal(t, &from, repo.filter.From)
}

func TestService_ListErrors(t *testing.T) {
	from := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &fakeTx{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBlocksRequest{ProjectID: 42, From: &from, To: &from})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	repo := newFakeRepo()
	repo.listErr = errors.New("db down")
	svc = NewService(repo, &fakeTx{}, nopLogger{})

	_, err = svc.List(context.Background(), &models.ListBlocksRequest{ProjectID: 42})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepo()
	tx := &fakeTx{}
	svc := NewService(repo, tx, nopLogger{})
	created, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, repo.deleted)
	assert.Equal(t, 2, tx.calls)

	err = svc.Delete(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}
