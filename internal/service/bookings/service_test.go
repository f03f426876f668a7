package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GH-BookingService/internal/service/bookings/models"
	"github.com/m04kA/GH-BookingService/pkg/ptr"
)

// fakeBookingRepo хранит бронирования в памяти
type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
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

func (f *fakeBookingRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.OverlapsWindow(from, to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id int64, update domain.BookingUpdate) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if update.Name != nil {
		b.Name = *update.Name
	}
	if update.IsPaid != nil {
		b.IsPaid = *update.IsPaid
	}
	if update.TotalAmount != nil {
		b.TotalAmount = *update.TotalAmount
	}
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
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

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func seededRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:           1,
			RoomID:       1,
			Name:         "John Doe",
			CheckInDate:  date("2026-03-20"),
			CheckOutDate: date("2026-03-22"),
			CheckInTime:  "14:00",
			CheckOutTime: "11:00",
			TotalAmount:  159.98,
		},
	}}
}

func TestCancel(t *testing.T) {
	repo := seededRepo()
	site := &fakeSiteClient{}
	svc := NewService(repo, site, nopLogger{}, 5*time.Second)

	// Первая отмена возвращает удаленное бронирование
	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.Equal(t, 1, site.calls)
	assert.Empty(t, repo.bookings)

	// Повторная отмена того же ID отдает not found
	_, err = svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdate(t *testing.T) {
	repo := seededRepo()
	site := &fakeSiteClient{}
	svc := NewService(repo, site, nopLogger{}, 5*time.Second)

	resp, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		Name:   ptr.Ptr("Jane Smith"),
		IsPaid: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", resp.Name)
	assert.True(t, resp.IsPaid)
	assert.Equal(t, 1, site.calls)
}

func TestUpdate_Invalid(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, &fakeSiteClient{}, nopLogger{}, 5*time.Second)

	// Пустое обновление
	_, err := svc.Update(context.Background(), 1, &models.UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Некорректный формат времени
	_, err = svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		CheckInTime: ptr.Ptr("25:99"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Отрицательная сумма
	_, err = svc.Update(context.Background(), 1, &models.UpdateBookingRequest{
		TotalAmount: ptr.Ptr(-10.0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Несуществующее бронирование
	_, err = svc.Update(context.Background(), 42, &models.UpdateBookingRequest{
		Name: ptr.Ptr("Jane Smith"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByDateRange_InvalidRange(t *testing.T) {
	svc := NewService(seededRepo(), &fakeSiteClient{}, nopLogger{}, 5*time.Second)

	_, err := svc.GetByDateRange(context.Background(), date("2026-03-22"), date("2026-03-20"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetByID(t *testing.T) {
	svc := NewService(seededRepo(), &fakeSiteClient{}, nopLogger{}, 5*time.Second)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-20", resp.CheckInDate)
	assert.Equal(t, "2026-03-22", resp.CheckOutDate)
	assert.Equal(t, "14:00", resp.CheckInTime)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
