package daterange_test

import (
	"errors"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/daterange"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestResolve_YearOnly(t *testing.T) {
	r, err := daterange.Resolve(2013, 0, 0)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if r == nil {
		t.Fatal("Expected a range, got nil")
	}

	wantFrom := date(2013, time.January, 1, 0, 0, 0)
	wantTo := date(2013, time.December, 31, 23, 59, 59)
	if !r.From.Equal(wantFrom) {
		t.Errorf("Expected from %v, got %v", wantFrom, r.From)
	}
	if !r.To.Equal(wantTo) {
		t.Errorf("Expected to %v, got %v", wantTo, r.To)
	}
}

func TestResolve_YearAndMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"march", 2013, 3, date(2013, time.March, 1, 0, 0, 0), date(2013, time.March, 31, 23, 59, 59)},
		{"february non-leap", 2013, 2, date(2013, time.February, 1, 0, 0, 0), date(2013, time.February, 28, 23, 59, 59)},
		{"february leap", 2012, 2, date(2012, time.February, 1, 0, 0, 0), date(2012, time.February, 29, 23, 59, 59)},
		{"december year rollover", 2013, 12, date(2013, time.December, 1, 0, 0, 0), date(2013, time.December, 31, 23, 59, 59)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := daterange.Resolve(tt.year, tt.month, 0)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if !r.From.Equal(tt.wantFrom) {
				t.Errorf("Expected from %v, got %v", tt.wantFrom, r.From)
			}
			if !r.To.Equal(tt.wantTo) {
				t.Errorf("Expected to %v, got %v", tt.wantTo, r.To)
			}
		})
	}
}

func TestResolve_FullDate(t *testing.T) {
	r, err := daterange.Resolve(2013, 3, 5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !r.From.Equal(date(2013, time.March, 5, 0, 0, 0)) {
		t.Errorf("Unexpected from: %v", r.From)
	}
	if !r.To.Equal(date(2013, time.March, 5, 23, 59, 59)) {
		t.Errorf("Unexpected to: %v", r.To)
	}
}

func TestResolve_NoYear(t *testing.T) {
	r, err := daterange.Resolve(0, 3, 5)
	if err != nil {
		t.Fatalf("Expected no error for absent year, got %v", err)
	}
	if r != nil {
		t.Errorf("Expected nil range for absent year, got %+v", r)
	}
}

func TestResolve_InvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
	}{
		{"february 29 non-leap", 2010, 2, 29},
		{"month 13", 2013, 13, 0},
		{"month zero with day", 2013, 0, 5},
		{"day 32", 2013, 1, 32},
		{"april 31", 2013, 4, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := daterange.Resolve(tt.year, tt.month, tt.day)
			if !errors.Is(err, daterange.ErrInvalidDate) {
				t.Errorf("Expected ErrInvalidDate, got %v", err)
			}
			if r != nil {
				t.Errorf("Expected nil range, got %+v", r)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	r, _ := daterange.Resolve(2013, 3, 0)

	if !r.Contains(r.From) {
		t.Error("Range should contain its lower endpoint")
	}
	if !r.Contains(r.To) {
		t.Error("Range should contain its upper endpoint")
	}
	if r.Contains(r.From.Add(-time.Second)) {
		t.Error("Range should not contain times before the lower endpoint")
	}
	if r.Contains(r.To.Add(time.Second)) {
		t.Error("Range should not contain times after the upper endpoint")
	}
}
