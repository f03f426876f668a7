package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		opts   Options
		wantOK bool
	}{
		{
			name:   "valid request",
			mutate: func(r *Request) {},
			wantOK: true,
		},
		{
			name:   "missing room number",
			mutate: func(r *Request) { r.RoomNumber = "" },
		},
		{
			name:   "missing name",
			mutate: func(r *Request) { r.Name = "" },
		},
		{
			name:   "missing address",
			mutate: func(r *Request) { r.Address = "" },
		},
		{
			name:   "missing id number",
			mutate: func(r *Request) { r.IDNumber = "" },
		},
		{
			name:   "missing purpose",
			mutate: func(r *Request) { r.Purpose = "" },
		},
		{
			name:   "phone too short",
			mutate: func(r *Request) { r.Phone = "12345" },
		},
		{
			name:   "phone with letters",
			mutate: func(r *Request) { r.Phone = "12345abcde" },
		},
		{
			name:   "phone with formatting characters",
			mutate: func(r *Request) { r.Phone = "+7 (900) 123-45-67" },
			wantOK: true,
		},
		{
			name:   "zero check-in date",
			mutate: func(r *Request) { r.CheckInDate = time.Time{} },
		},
		{
			name:   "check-in equals check-out",
			mutate: func(r *Request) { r.CheckOutDate = r.CheckInDate },
		},
		{
			name:   "check-in after check-out",
			mutate: func(r *Request) { r.CheckInDate, r.CheckOutDate = r.CheckOutDate, r.CheckInDate },
		},
		{
			name:   "invalid check-in time",
			mutate: func(r *Request) { r.CheckInTime = "25:99" },
		},
		{
			name:   "zero total amount",
			mutate: func(r *Request) { r.TotalAmount = 0 },
		},
		{
			name:   "negative advance amount",
			mutate: func(r *Request) { r.AdvanceAmount = -1 },
		},
		{
			name:   "advance above total allowed by default",
			mutate: func(r *Request) { r.AdvanceAmount = r.TotalAmount + 10 },
			wantOK: true,
		},
		{
			name:   "advance above total rejected when limit enforced",
			mutate: func(r *Request) { r.AdvanceAmount = r.TotalAmount + 10 },
			opts:   Options{EnforceAdvanceLimit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req, tt.opts)
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}
