package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
	"github.com/m04kA/GH-BookingService/pkg/ptr"
)

type stubRoomRepo struct {
	rooms     []*domain.Room
	available []*domain.Room
	filter    domain.RoomFilter
}

func (s *stubRoomRepo) List(ctx context.Context) ([]*domain.Room, error) {
	return s.rooms, nil
}

func (s *stubRoomRepo) ListAvailable(ctx context.Context, checkIn, checkOut time.Time, filter domain.RoomFilter) ([]*domain.Room, error) {
	s.filter = filter
	return s.available, nil
}

type stubBookingRepo struct {
	byRoom map[int64][]*domain.Booking
}

func (s *stubBookingRepo) GetByRoomID(ctx context.Context, roomID int64) ([]*domain.Booking, error) {
	return s.byRoom[roomID], nil
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

func newTestService(roomRepo *stubRoomRepo, bookingRepo *stubBookingRepo) *Service {
	return NewService(roomRepo, bookingRepo, nopLogger{}, 5*time.Second)
}

func TestIsRoomAvailable(t *testing.T) {
	bookingRepo := &stubBookingRepo{
		byRoom: map[int64][]*domain.Booking{
			1: {
				{ID: 10, RoomID: 1, CheckInDate: date("2026-03-20"), CheckOutDate: date("2026-03-22")},
				{ID: 11, RoomID: 1, CheckInDate: date("2026-04-01"), CheckOutDate: date("2026-04-05")},
			},
		},
	}
	svc := newTestService(&stubRoomRepo{}, bookingRepo)

	// Пересечение с первым бронированием
	available, err := svc.IsRoomAvailable(context.Background(), 1, date("2026-03-21"), date("2026-03-23"))
	require.NoError(t, err)
	assert.False(t, available)

	// Пересечение со вторым бронированием - проверяются все, не только первое
	available, err = svc.IsRoomAvailable(context.Background(), 1, date("2026-04-02"), date("2026-04-03"))
	require.NoError(t, err)
	assert.False(t, available)

	// Заезд в день выезда существующего бронирования
	available, err = svc.IsRoomAvailable(context.Background(), 1, date("2026-03-22"), date("2026-03-24"))
	require.NoError(t, err)
	assert.True(t, available)

	// Комната без бронирований
	available, err = svc.IsRoomAvailable(context.Background(), 2, date("2026-03-20"), date("2026-03-22"))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsRoomAvailable_InvalidRange(t *testing.T) {
	svc := newTestService(&stubRoomRepo{}, &stubBookingRepo{})

	_, err := svc.IsRoomAvailable(context.Background(), 1, date("2026-03-22"), date("2026-03-20"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.IsRoomAvailable(context.Background(), 1, date("2026-03-20"), date("2026-03-20"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetRoomAvailability(t *testing.T) {
	roomRepo := &stubRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, Number: "101"},
			{ID: 2, Number: "102"},
			{ID: 3, Number: "103"},
		},
	}
	bookingRepo := &stubBookingRepo{
		byRoom: map[int64][]*domain.Booking{
			2: {
				{ID: 20, RoomID: 2, CheckInDate: date("2026-03-20"), CheckOutDate: date("2026-03-25")},
			},
		},
	}
	svc := newTestService(roomRepo, bookingRepo)

	resp, err := svc.GetRoomAvailability(context.Background(), date("2026-03-21"), date("2026-03-23"))
	require.NoError(t, err)

	// Ровно одна запись на комнату, порядок совпадает с порядком комнат
	require.Len(t, resp.Availability, 3)
	assert.Equal(t, int64(1), resp.Availability[0].RoomID)
	assert.True(t, resp.Availability[0].IsAvailable)
	assert.Equal(t, int64(2), resp.Availability[1].RoomID)
	assert.False(t, resp.Availability[1].IsAvailable)
	assert.Equal(t, int64(3), resp.Availability[2].RoomID)
	assert.True(t, resp.Availability[2].IsAvailable)
}

func TestGetAvailableRooms_FilterValidation(t *testing.T) {
	roomRepo := &stubRoomRepo{
		available: []*domain.Room{{ID: 1, Number: "101", Type: domain.TypeACDouble}},
	}
	svc := newTestService(roomRepo, &stubBookingRepo{})

	// Валидный фильтр прокидывается в репозиторий
	resp, err := svc.GetAvailableRooms(context.Background(), date("2026-03-20"), date("2026-03-22"), &RoomFilterRequest{
		Type:     ptr.Ptr(string(domain.TypeACDouble)),
		MaxPrice: ptr.Ptr(100.0),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	require.NotNil(t, roomRepo.filter.Type)
	assert.Equal(t, domain.TypeACDouble, *roomRepo.filter.Type)

	// Неизвестный тип комнаты отклоняется
	_, err = svc.GetAvailableRooms(context.Background(), date("2026-03-20"), date("2026-03-22"), &RoomFilterRequest{
		Type: ptr.Ptr("Penthouse"),
	})
	assert.ErrorIs(t, err, ErrInvalidRoomType)
}

func TestGetAvailableRooms_NilFilter(t *testing.T) {
	roomRepo := &stubRoomRepo{available: []*domain.Room{}}
	svc := newTestService(roomRepo, &stubBookingRepo{})

	resp, err := svc.GetAvailableRooms(context.Background(), date("2026-03-20"), date("2026-03-22"), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}
