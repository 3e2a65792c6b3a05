package blockedslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IS-SalonBookingService/internal/domain"
	blockedSlotRepo "github.com/m04kA/IS-SalonBookingService/internal/infra/storage/blockedslot"
)

type fakeBlockedSlotRepo struct {
	blocks    map[int64]*domain.BlockedSlot
	nextID    int64
	deleteErr error
}

func (f *fakeBlockedSlotRepo) Create(_ context.Context, block *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	f.nextID++
	block.ID = f.nextID
	block.CreatedAt = time.Now()
	f.blocks[block.ID] = block
	return block, nil
}

func (f *fakeBlockedSlotRepo) GetByProfessionalAndDate(_ context.Context, professionalID int64, _ time.Time) ([]*domain.BlockedSlot, error) {
	var result []*domain.BlockedSlot
	for _, block := range f.blocks {
		if block.ProfessionalID == professionalID {
			result = append(result, block)
		}
	}
	return result, nil
}

func (f *fakeBlockedSlotRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.blocks[id]; !ok {
		return blockedSlotRepo.ErrBlockedSlotNotFound
	}
	delete(f.blocks, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *fakeBlockedSlotRepo) {
	repo := &fakeBlockedSlotRepo{blocks: map[int64]*domain.BlockedSlot{}}
	return NewService(repo, nopLogger{}), repo
}

func validCreateRequest() CreateBlockRequest {
	return CreateBlockRequest{
		ProfessionalID: 1,
		BlockDate:      time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
		StartTime:      "13:00",
		EndTime:        "15:00",
		Reason:         "Almoço",
	}
}

func TestCreate(t *testing.T) {
	svc, _ := newService()

	block, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotZero(t, block.ID)
	assert.Equal(t, "Almoço", block.Reason)
	assert.False(t, block.IsFullDay())
}

func TestCreate_FullDay(t *testing.T) {
	svc, _ := newService()

	req := validCreateRequest()
	req.FullDay = true
	req.StartTime = ""
	req.EndTime = ""

	block, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.EqualValues(t, domain.FullDayBlockStart, block.StartTime)
	assert.EqualValues(t, domain.FullDayBlockEnd, block.EndTime)
	assert.True(t, block.IsFullDay())
}

func TestCreate_InvertedRange(t *testing.T) {
	svc, _ := newService()

	req := validCreateRequest()
	req.StartTime = "15:00"
	req.EndTime = "13:00"

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Пустой интервал тоже отклоняется
	req.StartTime = "13:00"
	req.EndTime = "13:00"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService()

	req := validCreateRequest()
	req.ProfessionalID = 0
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validCreateRequest()
	req.BlockDate = time.Time{}
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validCreateRequest()
	req.StartTime = "1pm"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_OverlappingBlocksAllowed(t *testing.T) {
	svc, repo := newService()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Пересекающаяся блокировка не конфликт: эффекты объединяются
	req := validCreateRequest()
	req.StartTime = "14:00"
	req.EndTime = "16:00"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, repo.blocks, 2)
}

func TestDelete_Idempotent(t *testing.T) {
	svc, repo := newService()

	block, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), block.ID))
	assert.Empty(t, repo.blocks)

	// Повторное удаление - успех: слот и так разблокирован
	assert.NoError(t, svc.Delete(context.Background(), block.ID))

	assert.Error(t, svc.Delete(context.Background(), 0))
}

func TestList(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	blocks, err := svc.List(context.Background(), 1, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, blocks, 1)

	_, err = svc.List(context.Background(), 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidInput)
}
