package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
	roomRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/room"
	"github.com/m04kA/GH-BookingService/internal/service/rooms/models"
	"github.com/m04kA/GH-BookingService/pkg/ptr"
)

// fakeRoomRepo хранит комнаты в памяти; hasBookings включает
// restrict-политику удаления
type fakeRoomRepo struct {
	nextID      int64
	rooms       map[int64]*domain.Room
	hasBookings map[int64]bool
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:       make(map[int64]*domain.Room),
		hasBookings: make(map[int64]bool),
	}
}

func (f *fakeRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomFilter) ([]*domain.Room, error) {
	return nil, nil
}

func (f *fakeRoomRepo) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return r, nil
}

func (f *fakeRoomRepo) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	for _, r := range f.rooms {
		if r.Number == number {
			return r, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	for _, r := range f.rooms {
		if r.Number == room.Number {
			return nil, roomRepo.ErrRoomNumberTaken
		}
	}
	f.nextID++
	created := *room
	created.ID = f.nextID
	f.rooms[created.ID] = &created
	return &created, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, id int64, update domain.RoomUpdate) error {
	r, ok := f.rooms[id]
	if !ok {
		return roomRepo.ErrRoomNotFound
	}
	if update.Price != nil {
		r.Price = *update.Price
	}
	if update.IsAvailable != nil {
		r.IsAvailable = *update.IsAvailable
	}
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrRoomNotFound
	}
	if f.hasBookings[id] {
		return roomRepo.ErrRoomHasBookings
	}
	delete(f.rooms, id)
	return nil
}

type fakeSiteClient struct {
	calls int
}

func (f *fakeSiteClient) RevalidateGuesthouse(ctx context.Context) {
	f.calls++
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validCreateRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Number:      "101",
		Name:        "AC Double Room",
		Type:        string(domain.TypeACDouble),
		Description: "Comfortable air-conditioned room with double bed",
		Price:       79.99,
		HasAC:       true,
		Capacity:    2,
		Image:       "/placeholder.svg",
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeRoomRepo()
	site := &fakeSiteClient{}
	svc := NewService(repo, site, nopLogger{}, 5*time.Second)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "101", resp.Number)
	assert.True(t, resp.IsAvailable, "rooms are available by default")
	assert.Equal(t, 1, site.calls)

	// Дубликат номера отклоняется
	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrRoomNumberTaken)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRoomRepo(), &fakeSiteClient{}, nopLogger{}, 5*time.Second)

	req := validCreateRequest()
	req.Number = ""
	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validCreateRequest()
	req.Type = "Penthouse"
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidRoomType)

	req = validCreateRequest()
	req.Capacity = 0
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validCreateRequest()
	req.Price = -1
	_, err = svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	repo := newFakeRoomRepo()
	svc := NewService(repo, &fakeSiteClient{}, nopLogger{}, 5*time.Second)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		Price:       ptr.Ptr(89.99),
		IsAvailable: ptr.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 89.99, resp.Price)
	assert.False(t, resp.IsAvailable)

	// Пустое обновление отклоняется
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректный тип отклоняется до похода в хранилище
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateRoomRequest{
		Type: ptr.Ptr("Penthouse"),
	})
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestDelete(t *testing.T) {
	repo := newFakeRoomRepo()
	site := &fakeSiteClient{}
	svc := NewService(repo, site, nopLogger{}, 5*time.Second)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Комната с бронированиями не удаляется
	repo.hasBookings[created.ID] = true
	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRoomHasBookings)

	repo.hasBookings[created.ID] = false
	err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
