package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sementinha/internal/domain"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Money
	}{
		{"1000", 100000},
		{"1000.00", 100000},
		{"600.5", 60050},
		{"12,90", 1290},
		{" 7.05 ", 705},
		{"+3", 300},
		{"0", 0},
		{"-5", -500},
		{"0.01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseMoney(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.234", "1.2.3", ".5", "12a", "1e3", "R$10", "-", "1234567890123456"} {
		t.Run(in, func(t *testing.T) {
			_, err := domain.ParseMoney(in)
			require.ErrorIs(t, err, domain.ErrInvalidAmount)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1100.00", domain.Money(110000).String())
	assert.Equal(t, "0.05", domain.Money(5).String())
	assert.Equal(t, "-5.00", domain.Money(-500).String())
	assert.Equal(t, "0.00", domain.Money(0).String())
}

func TestSum_IsExact(t *testing.T) {
	// 0.1 + 0.2 is not 0.3 in binary floating point; in cents it is.
	total := domain.Sum(domain.MustParseMoney("0.10"), domain.MustParseMoney("0.20"))
	assert.Equal(t, domain.MustParseMoney("0.30"), total)
}
