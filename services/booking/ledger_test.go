package booking

import (
	"math/rand"
	"testing"

	"tourdesk/models"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePaymentProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		totalCents := rng.Intn(500000)
		advanceCents := 0
		switch i % 4 {
		case 0:
			advanceCents = totalCents
		case 1:
			advanceCents = 0
		default:
			if totalCents > 0 {
				advanceCents = rng.Intn(totalCents + 1)
			}
		}
		total := float64(totalCents) / 100
		advance := float64(advanceCents) / 100

		remaining, status, err := ComputePayment(total, advance)
		require.NoError(t, err)
		assert.InDelta(t, total-advance, remaining, 0.001)

		switch {
		case totalCents == advanceCents:
			assert.Equal(t, models.PaymentPaid, status, "total=%v advance=%v", total, advance)
		case advanceCents > 0:
			assert.Equal(t, models.PaymentPartial, status, "total=%v advance=%v", total, advance)
		default:
			assert.Equal(t, models.PaymentPending, status, "total=%v advance=%v", total, advance)
		}
	}
}

func TestComputePaymentCases(t *testing.T) {
	cases := []struct {
		total, advance, remaining float64
		status                    models.PaymentStatus
	}{
		{500, 500, 0, models.PaymentPaid},
		{500, 200, 300, models.PaymentPartial},
		{500, 0, 500, models.PaymentPending},
		{0, 0, 0, models.PaymentPaid},
		{0.3, 0.1, 0.2, models.PaymentPartial},
	}
	for _, tc := range cases {
		remaining, status, err := ComputePayment(tc.total, tc.advance)
		require.NoError(t, err)
		assert.Equal(t, tc.remaining, remaining)
		assert.Equal(t, tc.status, status)
	}
}

func TestComputePaymentRejectsBadAmounts(t *testing.T) {
	for _, tc := range [][2]float64{{100, 150}, {-1, 0}, {100, -5}} {
		_, _, err := ComputePayment(tc[0], tc[1])
		assert.True(t, utils.IsValidation(err), "%v", tc)
	}
}
