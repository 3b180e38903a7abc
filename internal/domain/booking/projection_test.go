//go:build unit

package booking_test

import (
	"testing"

	"tripflow/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestProjectionCancellable(t *testing.T) {
	cases := []struct {
		name        string
		status      booking.Status
		payment     booking.PaymentStatus
		cancellable bool
	}{
		{"pending unpaid", booking.StatusPending, booking.PaymentUnpaid, true},
		{"confirmed paid", booking.StatusConfirmed, booking.PaymentPaid, false},
		{"already cancelled", booking.StatusCancelled, booking.PaymentUnpaid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := booking.Projection{Status: tc.status, PaymentStatus: tc.payment}
			assert.Equal(t, tc.cancellable, p.Cancellable())
		})
	}
}
