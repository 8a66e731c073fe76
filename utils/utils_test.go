package utils

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct{ code, phone, want string }{
		{"+971", "50 123 4567", "971501234567"},
		{"971", "0501234567", "971501234567"},
		{"+971", "+971501234567", "971501234567"},
		{"", "(050) 123-4567", "501234567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPhone(tc.code, tc.phone), "%s %s", tc.code, tc.phone)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "AED 150.00", FormatAmount("AED", 150))
	assert.Equal(t, "USD 0.30", FormatAmount("USD", 0.1+0.2))
	assert.Equal(t, "12.35", FormatAmount("", 12.346))
}

func TestTypedErrors(t *testing.T) {
	nf := fmt.Errorf("wrapped: %w", NewNotFoundError("Booking", "b1"))
	assert.True(t, IsNotFound(nf))
	assert.Equal(t, "Booking not found", UserMessage(nf))
	assert.Equal(t, http.StatusNotFound, StatusFor(nf))

	ve := NewValidationError("phone", "phone is required")
	assert.True(t, IsValidation(ve))
	assert.Equal(t, "phone is required", UserMessage(ve))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(ve))

	ce := NewConflictError("Driver is busy")
	assert.True(t, IsConflict(ce))
	assert.Equal(t, http.StatusConflict, StatusFor(ce))

	plain := fmt.Errorf("boom")
	assert.False(t, IsNotFound(plain) || IsValidation(plain) || IsConflict(plain))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(plain))
	assert.NotContains(t, UserMessage(plain), "boom")
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", RoleCompany, time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, &SessionClaims{UserID: "u1", Role: RoleCompany}, claims)

	expired, err := GenerateToken("u1", RoleCompany, -time.Minute)
	require.NoError(t, err)
	_, err = ParseSessionToken(expired)
	assert.Error(t, err)

	_, err = ParseSessionToken(token + "x")
	assert.Error(t, err)
}

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("AED"))
	assert.False(t, IsSupportedCurrency("aed"))
	assert.False(t, IsSupportedCurrency("GBP"))
}
