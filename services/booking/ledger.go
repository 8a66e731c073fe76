package booking

import (
	"tourdesk/models"
	"tourdesk/utils"
)

// ComputePayment derives the remaining balance and payment status from the
// amounts entered on the form. Amounts must satisfy 0 <= advance <= total.
func ComputePayment(total, advance float64) (float64, models.PaymentStatus, error) {
	total = utils.RoundMoney(total)
	advance = utils.RoundMoney(advance)
	if total < 0 {
		return 0, "", utils.NewValidationError("total_amount", "total amount cannot be negative")
	}
	if advance < 0 {
		return 0, "", utils.NewValidationError("advance_amount", "advance amount cannot be negative")
	}
	if advance > total {
		return 0, "", utils.NewValidationError("advance_amount", "advance amount cannot exceed total amount")
	}

	remaining := utils.RoundMoney(total - advance)
	return remaining, PaymentStatusFor(remaining, advance), nil
}

// PaymentStatusFor: paid when nothing remains, partial when something was paid, else pending.
func PaymentStatusFor(remaining, advance float64) models.PaymentStatus {
	switch {
	case remaining == 0:
		return models.PaymentPaid
	case advance > 0:
		return models.PaymentPartial
	default:
		return models.PaymentPending
	}
}

// applyAmounts writes the caller-supplied amounts and everything derived from them.
func applyAmounts(b *models.ManualBooking, total, advance float64) error {
	remaining, status, err := ComputePayment(total, advance)
	if err != nil {
		return err
	}
	b.TotalAmount = utils.RoundMoney(total)
	b.AdvanceAmount = utils.RoundMoney(advance)
	b.RemainingAmount = remaining
	b.PaymentStatus = status
	return nil
}
