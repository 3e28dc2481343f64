package period_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
	"github.com/SscSPs/books_ledger/internal/utils/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, tz string) *period.Resolver {
	t.Helper()
	r, err := period.NewResolver(period.Config{Timezone: tz, DateFormat: domain.DateFormatDMY, DateSeparator: "-"})
	require.NoError(t, err)
	return r
}

func TestResolve_MonthInTenantTimezone(t *testing.T) {
	r := newResolver(t, "Asia/Kolkata")

	p, err := r.Resolve("2024-03")
	require.NoError(t, err)
	require.NotNil(t, p.Start)

	assert.Equal(t, time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC), *p.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 18, 29, 59, 999_000_000, time.UTC), p.End)

	slash, err := r.Resolve("2024/3")
	require.NoError(t, err)
	assert.Equal(t, *p.Start, *slash.Start)
	assert.Equal(t, p.End, slash.End)
}

func TestResolve_YearAndRange(t *testing.T) {
	r := newResolver(t, "UTC")

	year, err := r.Resolve("2023")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *year.Start)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 999_000_000, time.UTC), year.End)

	rng, err := r.Resolve("05-01-2024..20-01-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2024, 1, 20, 23, 59, 59, 999_000_000, time.UTC), rng.End)

	day, err := r.Resolve("29-02-2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *day.Start)
}

func TestResolve_InvalidTokens(t *testing.T) {
	r := newResolver(t, "UTC")
	for _, token := range []string{
		"",
		"2024-13",
		"2024-00",
		"24-03",
		"march",
		"31-02-2024",
		"20-01-2024..05-01-2024",
		"01-01-24",
		"aa-bb-cccc",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := r.Resolve(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidPeriod), "got %v", err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestResolve_LocalMidnightBelongsToPeriod(t *testing.T) {
	for _, tz := range []string{"UTC", "Asia/Kolkata", "America/New_York", "Pacific/Auckland", "Asia/Kathmandu"} {
		t.Run(tz, func(t *testing.T) {
			r := newResolver(t, tz)
			loc := r.Location()
			for month := 1; month <= 12; month++ {
				p, err := r.Resolve(time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
				require.NoError(t, err)

				midnight := time.Date(2024, time.Month(month), 1, 0, 0, 0, 0, loc).UTC()
				assert.True(t, p.Contains(midnight), "in-period must include local midnight")
				assert.False(t, midnight.Before(*p.Start), "opening balance must exclude local midnight")
				assert.False(t, p.Contains(midnight.Add(-time.Millisecond)))
			}
		})
	}
}

func TestResolve_DSTMonthEndsAtLocalEndOfDay(t *testing.T) {
	r := newResolver(t, "America/New_York")

	p, err := r.Resolve("2024-03")
	require.NoError(t, err)
	local := p.End.In(r.Location())
	assert.Equal(t, 31, local.Day())
	assert.Equal(t, 23, local.Hour())
	assert.Equal(t, 59, local.Minute())
	assert.Equal(t, 999_000_000, local.Nanosecond())
}

func TestParseDate_TenantFormats(t *testing.T) {
	mdy, err := period.NewResolver(period.Config{Timezone: "UTC", DateFormat: domain.DateFormatMDY, DateSeparator: "/"})
	require.NoError(t, err)
	d, err := mdy.ParseDate("03/15/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "03/15/2024", mdy.FormatDate(d))

	ymd, err := period.NewResolver(period.Config{Timezone: "UTC", DateFormat: domain.DateFormatYMD, DateSeparator: "."})
	require.NoError(t, err)
	d, err = ymd.ParseDate("2024.03.15")
	require.NoError(t, err)
	assert.Equal(t, "2024.03.15", ymd.FormatDate(d))
}

func TestNewResolver_RejectsUnknownTimezone(t *testing.T) {
	_, err := period.NewResolver(period.Config{Timezone: "Mars/Olympus"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestAsOf_DropsStart(t *testing.T) {
	r := newResolver(t, "UTC")
	p, err := r.AsOf("2024-06")
	require.NoError(t, err)
	assert.Nil(t, p.Start)
	assert.True(t, p.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2024, 6, 30, 23, 59, 59, 999_000_000, time.UTC), p.End)
}
