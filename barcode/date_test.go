package barcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDate(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantISO string
	}{
		{"plain date", "171231", "2017-12-31"},
		{"day 00 is month end", "170200", "2017-02-28"},
		{"day 00 in leap year", "240200", "2024-02-29"},
		{"pivot 71 is 1971", "710101", "1971-01-01"},
		{"pivot 70 is 2070", "700101", "2070-01-01"},
		{"month 13 wraps", "171301", "2018-01-01"},
		{"extra characters ignored", "2512319", "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DecodeDate(tt.input, now)
			require.True(t, ok)
			assert.Equal(t, tt.wantISO, d.ISO)
			assert.Equal(t, 23, d.Time.Hour())
			assert.Equal(t, 59, d.Time.Minute())
			assert.Equal(t, 59, d.Time.Second())
			assert.Equal(t, 999*time.Millisecond, time.Duration(d.Time.Nanosecond()))
		})
	}
}

func TestDecodeDate_Invalid(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	for _, input := range []string{"", "1712", "17123", "17AB31", "ABCDEF"} {
		_, ok := DecodeDate(input, now)
		assert.False(t, ok, input)
	}
}

func TestDecodeDate_EndOfDayExpiry(t *testing.T) {
	before := time.Date(2017, 12, 31, 23, 59, 59, 0, time.UTC)
	d, ok := DecodeDate("171231", before)
	require.True(t, ok)
	assert.False(t, d.IsExpired)
	assert.Equal(t, 1, d.DaysToExpiry)

	after := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	d, ok = DecodeDate("171231", after)
	require.True(t, ok)
	assert.True(t, d.IsExpired)
	assert.Equal(t, 0, d.DaysToExpiry)
}

func TestDecodeDate_DaysToExpiry(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	d, ok := DecodeDate("261025", now)
	require.True(t, ok)
	assert.False(t, d.IsExpired)
	assert.Equal(t, 11, d.DaysToExpiry)

	d, ok = DecodeDate("261005", now)
	require.True(t, ok)
	assert.True(t, d.IsExpired)
	assert.Equal(t, -9, d.DaysToExpiry)
}

func TestDecodeDate_UsesClockLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	d, ok := DecodeDate("251231", time.Date(2025, 12, 31, 20, 0, 0, 0, jst))
	require.True(t, ok)
	assert.Equal(t, jst, d.Time.Location())
	assert.False(t, d.IsExpired)
}
