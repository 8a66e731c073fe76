package chatbot

import (
	"strconv"
	"strings"
	"time"

	"tourdesk/models"
)

// ParseTravelDate accepts DD/MM/YYYY with one- or two-digit day and month and
// a calendar-valid date. It returns the zero-padded form.
func ParseTravelDate(text string) (string, bool) {
	t, err := time.Parse("2/1/2006", strings.TrimSpace(text))
	if err != nil || t.Year() < 1 {
		return "", false
	}
	return t.Format("02/01/2006"), true
}

// ParsePartyCount accepts exactly three whitespace-separated non-negative integers.
func ParsePartyCount(text string) (*models.PartyCount, bool) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return nil, false
	}
	var n [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, false
		}
		n[i] = v
	}
	return &models.PartyCount{Adults: n[0], Kids: n[1], Infants: n[2]}, true
}

// ParseBudget accepts a positive integer written with ASCII digits only.
func ParseBudget(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(text)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ParseSelection accepts a 1-based index into a list of n options.
func ParseSelection(text string, n int) (int, bool) {
	v, ok := ParseBudget(text)
	if !ok || v > n {
		return 0, false
	}
	return v - 1, true
}
