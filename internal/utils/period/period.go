// Package period turns tenant date settings and user supplied period tokens
// into absolute UTC ranges.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/core/domain"
)

// RangeSeparator joins the two dates of an explicit range token.
const RangeSeparator = ".."

var (
	monthToken = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})$`)
	yearToken  = regexp.MustCompile(`^(\d{4})$`)
)

// Config is the tenant configuration the resolver needs.
type Config struct {
	Timezone      string
	DateFormat    string
	DateSeparator string
}

// ConfigFor builds a Config from a tenant, filling blanks with defaults.
func ConfigFor(t domain.Tenant, defaultTimezone string) Config {
	cfg := Config{Timezone: t.Timezone, DateFormat: t.DateFormat, DateSeparator: t.DateSeparator}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = domain.DateFormatDMY
	}
	if cfg.DateSeparator == "" {
		cfg.DateSeparator = "-"
	}
	return cfg
}

// Resolver resolves period tokens in one tenant's local time.
type Resolver struct {
	loc    *time.Location
	format string
	sep    string
}

// NewResolver validates the configuration and loads the timezone.
func NewResolver(cfg Config) (*Resolver, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", apperrors.ErrValidation, tz)
	}
	switch cfg.DateFormat {
	case "", domain.DateFormatDMY, domain.DateFormatMDY, domain.DateFormatYMD:
	default:
		return nil, fmt.Errorf("%w: unsupported date format %q", apperrors.ErrValidation, cfg.DateFormat)
	}
	format := cfg.DateFormat
	if format == "" {
		format = domain.DateFormatDMY
	}
	sep := cfg.DateSeparator
	if sep == "" {
		sep = "-"
	}
	return &Resolver{loc: loc, format: format, sep: sep}, nil
}

// Location returns the tenant timezone.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Resolve converts a YYYY-MM, YYYY/MM, YYYY or date..date token to an inclusive UTC range.
// A single date resolves to that whole day.
func (r *Resolver) Resolve(token string) (domain.Period, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Period{}, fmt.Errorf("%w: empty period", apperrors.ErrInvalidPeriod)
	}

	if m := monthToken.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return domain.Period{}, fmt.Errorf("%w: month %d out of range in %q", apperrors.ErrInvalidPeriod, month, token)
		}
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, r.loc)
		last := first.AddDate(0, 1, -1)
		return r.span(token, first, last), nil
	}

	if m := yearToken.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		first := time.Date(year, time.January, 1, 0, 0, 0, 0, r.loc)
		last := time.Date(year, time.December, 31, 0, 0, 0, 0, r.loc)
		return r.span(token, first, last), nil
	}

	if from, to, ok := strings.Cut(token, RangeSeparator); ok {
		return r.DayRange(from, to)
	}

	day, err := r.ParseDate(token)
	if err != nil {
		return domain.Period{}, err
	}
	return r.span(token, day, day), nil
}

// DayRange resolves an explicit pair of dates to an inclusive UTC range.
func (r *Resolver) DayRange(startDate, endDate string) (domain.Period, error) {
	from, err := r.ParseDate(startDate)
	if err != nil {
		return domain.Period{}, err
	}
	to, err := r.ParseDate(endDate)
	if err != nil {
		return domain.Period{}, err
	}
	if from.After(to) {
		return domain.Period{}, fmt.Errorf("%w: start %s is after end %s", apperrors.ErrInvalidPeriod, startDate, endDate)
	}
	token := strings.TrimSpace(startDate) + RangeSeparator + strings.TrimSpace(endDate)
	return r.span(token, from, to), nil
}

// AsOf resolves a token and drops its start bound, so the range covers all time up to its end.
func (r *Resolver) AsOf(token string) (domain.Period, error) {
	p, err := r.Resolve(token)
	if err != nil {
		return domain.Period{}, err
	}
	p.Start = nil
	return p, nil
}

// Year resolves a calendar year in tenant-local time.
func (r *Resolver) Year(year int) (domain.Period, error) {
	if year < 1 || year > 9999 {
		return domain.Period{}, fmt.Errorf("%w: year %d out of range", apperrors.ErrInvalidPeriod, year)
	}
	return r.Resolve(fmt.Sprintf("%04d", year))
}

// ParseDate parses a date in the tenant format and returns local midnight of that day.
func (r *Resolver) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, r.sep)
	if len(parts) != 3 {
		parts = strings.FieldsFunc(s, func(c rune) bool { return c == '-' || c == '/' || c == '.' })
	}
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: date %q does not match %s", apperrors.ErrInvalidPeriod, s, r.format)
	}

	var ys, ms, ds string
	switch r.format {
	case domain.DateFormatMDY:
		ms, ds, ys = parts[0], parts[1], parts[2]
	case domain.DateFormatYMD:
		ys, ms, ds = parts[0], parts[1], parts[2]
	default:
		ds, ms, ys = parts[0], parts[1], parts[2]
	}
	if len(ys) != 4 {
		return time.Time{}, fmt.Errorf("%w: year in %q must have four digits", apperrors.ErrInvalidPeriod, s)
	}
	year, errY := strconv.Atoi(ys)
	month, errM := strconv.Atoi(ms)
	day, errD := strconv.Atoi(ds)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not numeric", apperrors.ErrInvalidPeriod, s)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: month %d out of range in %q", apperrors.ErrInvalidPeriod, month, s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.loc)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %q is not a calendar date", apperrors.ErrInvalidPeriod, s)
	}
	return t, nil
}

// MonthKey returns the tenant-local YYYY-MM of an instant.
func (r *Resolver) MonthKey(t time.Time) string {
	return t.In(r.loc).Format("2006-01")
}

// FormatDate renders an instant as a tenant-local date in the tenant format.
func (r *Resolver) FormatDate(t time.Time) string {
	l := t.In(r.loc)
	d, m, y := fmt.Sprintf("%02d", l.Day()), fmt.Sprintf("%02d", int(l.Month())), fmt.Sprintf("%04d", l.Year())
	switch r.format {
	case domain.DateFormatMDY:
		return m + r.sep + d + r.sep + y
	case domain.DateFormatYMD:
		return y + r.sep + m + r.sep + d
	default:
		return d + r.sep + m + r.sep + y
	}
}

// span builds the UTC range from local first day 00:00 to local last day 23:59:59.999.
func (r *Resolver) span(token string, firstDay, lastDay time.Time) domain.Period {
	start := time.Date(firstDay.Year(), firstDay.Month(), firstDay.Day(), 0, 0, 0, 0, r.loc).UTC()
	end := time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), 23, 59, 59, int(999*time.Millisecond), r.loc).UTC()
	return domain.Period{Token: token, Start: &start, End: end}
}
