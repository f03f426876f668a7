package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
	roomRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/room"
	"github.com/m04kA/GH-BookingService/pkg/types"
)

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func (f *fakeRoomRepo) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	room, ok := f.rooms[number]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

// fakeBookingRepo хранит бронирования в памяти. Конкурентный доступ
// сериализуется mutex-ом fakeTxManager, как транзакциями на стороне БД.
type fakeBookingRepo struct {
	nextID   int64
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

// fakeTxManager выполняет fn под общим mutex: конкурентные транзакции
// видят результаты друг друга строго по очереди
type fakeTxManager struct {
	mu *sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
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

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validRequest() *Request {
	return &Request{
		RoomNumber:    "101",
		Name:          "John Doe",
		Address:       "123 Main St, City",
		IDNumber:      "AADH123456",
		Phone:         "1234567890",
		Purpose:       "Business Trip",
		CheckInDate:   date("2026-03-20"),
		CheckInTime:   types.TimeString("14:00"),
		CheckOutDate:  date("2026-03-22"),
		CheckOutTime:  types.TimeString("11:00"),
		TotalAmount:   159.98,
		AdvanceAmount: 79.99,
	}
}

func newTestUseCase(rooms *fakeRoomRepo, bookings *fakeBookingRepo, site *fakeSiteClient) *UseCase {
	return NewUseCase(
		rooms,
		bookings,
		&fakeTxManager{mu: &sync.Mutex{}},
		site,
		nopLogger{},
		Options{},
	)
}

func TestExecute_Success(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"101": {ID: 1, Number: "101", Type: domain.TypeACDouble},
	}}
	bookings := &fakeBookingRepo{}
	site := &fakeSiteClient{}
	uc := newTestUseCase(rooms, bookings, site)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, "101", resp.RoomNumber)
	assert.False(t, resp.IsPaid, "new booking is always unpaid")
	assert.Equal(t, 1, site.calls, "site cache is invalidated after booking")
}

func TestExecute_RoomNotFound(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{}}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(rooms, bookings, &fakeSiteClient{})

	req := validRequest()
	req.RoomNumber = "999"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Empty(t, bookings.bookings, "nothing is written for unknown room")
}

func TestExecute_RoomNotAvailable(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"101": {ID: 1, Number: "101"},
	}}
	bookings := &fakeBookingRepo{
		nextID: 100,
		bookings: []*domain.Booking{
			{ID: 100, RoomID: 1, CheckInDate: date("2026-03-20"), CheckOutDate: date("2026-03-22")},
		},
	}
	uc := newTestUseCase(rooms, bookings, &fakeSiteClient{})

	// Пересекающееся окно отклоняется
	req := validRequest()
	req.CheckInDate = date("2026-03-21")
	req.CheckOutDate = date("2026-03-23")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	assert.Len(t, bookings.bookings, 1)

	// Заезд в день выезда существующего бронирования проходит
	req = validRequest()
	req.CheckInDate = date("2026-03-22")
	req.CheckOutDate = date("2026-03-24")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
}

func TestExecute_ConcurrentRequests_OnlyOneSucceeds(t *testing.T) {
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"101": {ID: 1, Number: "101"},
	}}
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(rooms, bookings, &fakeSiteClient{})

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, ErrRoomNotAvailable)
			rejected++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one of the concurrent requests wins")
	assert.Equal(t, attempts-1, rejected)
	assert.Len(t, bookings.bookings, 1)
}
