// Copyright 2025 PracticePreach
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"time"
)

// Period is one Bundestag legislative period (Wahlperiode): a fixed
// real-world date interval during which one parliament and one set of
// manifestos is in force. Manifestos are dated to the period's start.
type Period struct {
	Number int
	Start  time.Time
	End    time.Time // zero for the ongoing period
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// bundestagPeriods is the hand-maintained Wahlperiode table. It must stay
// contiguous; the ongoing period has a zero End and needs updating when the
// next parliament is constituted.
var bundestagPeriods = []Period{
	{1, day(1949, time.September, 7), day(1953, time.October, 6)},
	{2, day(1953, time.October, 6), day(1957, time.October, 15)},
	{3, day(1957, time.October, 15), day(1961, time.October, 17)},
	{4, day(1961, time.October, 17), day(1965, time.October, 19)},
	{5, day(1965, time.October, 19), day(1969, time.October, 20)},
	{6, day(1969, time.October, 20), day(1972, time.December, 13)},
	{7, day(1972, time.December, 13), day(1976, time.December, 13)},
	{8, day(1976, time.December, 13), day(1980, time.November, 4)},
	{9, day(1980, time.November, 4), day(1983, time.March, 29)},
	{10, day(1983, time.March, 29), day(1987, time.February, 18)},
	{11, day(1987, time.February, 18), day(1990, time.December, 20)},
	{12, day(1990, time.December, 20), day(1994, time.November, 10)},
	{13, day(1994, time.November, 10), day(1998, time.October, 26)},
	{14, day(1998, time.October, 26), day(2002, time.October, 17)},
	{15, day(2002, time.October, 17), day(2005, time.October, 18)},
	{16, day(2005, time.October, 18), day(2009, time.October, 27)},
	{17, day(2009, time.October, 27), day(2013, time.October, 22)},
	{18, day(2013, time.October, 22), day(2017, time.October, 24)},
	{19, day(2017, time.October, 24), day(2021, time.October, 26)},
	{20, day(2021, time.October, 26), day(2025, time.March, 22)},
	{21, day(2025, time.March, 23), time.Time{}},
}

// Periods returns the legislative period table in chronological order.
func Periods() []Period {
	return bundestagPeriods
}

// Ongoing reports whether the period has no fixed end yet.
func (p Period) Ongoing() bool {
	return p.End.IsZero()
}

// Contains reports whether the date falls inside the period, bounds
// inclusive. Boundary days shared with the preceding period are resolved by
// PeriodContaining returning the earlier period first.
func (p Period) Contains(t time.Time) bool {
	if t.Before(p.Start) {
		return false
	}
	return p.Ongoing() || !t.After(p.End)
}

// PeriodContaining resolves the legislative period in force at the given
// calendar date.
func PeriodContaining(t time.Time) (Period, error) {
	for _, p := range bundestagPeriods {
		if p.Contains(t) {
			return p, nil
		}
	}
	return Period{}, fmt.Errorf("%w: %s", ErrNoPeriod, t.Format("2006-01-02"))
}

// SnapToPeriodBounds widens a query window to full legislative periods:
// the start of the period containing start and the end of the period
// containing end. Manifestos are valid for a whole period, so manifesto
// retrieval always uses these snapped bounds rather than the literal window.
// When the end date falls in the ongoing period, the returned upper bound is
// the end date itself.
func SnapToPeriodBounds(start, end time.Time) (time.Time, time.Time, error) {
	startPeriod, err := PeriodContaining(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endPeriod, err := PeriodContaining(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	upper := endPeriod.End
	if endPeriod.Ongoing() {
		upper = end
	}
	return startPeriod.Start, upper, nil
}

// ValidatePeriods checks the table for gaps and mis-ordered entries.
// Adjacent periods may share a boundary day (the historical table does);
// anything beyond a one-day seam is a configuration error. Call at startup.
func ValidatePeriods() error {
	if len(bundestagPeriods) == 0 {
		return ErrPeriodTable
	}
	for i := 1; i < len(bundestagPeriods); i++ {
		prev, next := bundestagPeriods[i-1], bundestagPeriods[i]
		if prev.Ongoing() {
			return fmt.Errorf("%w: period %d is open but not last", ErrPeriodTable, prev.Number)
		}
		if next.Start.After(prev.End.AddDate(0, 0, 1)) {
			return fmt.Errorf("%w: gap between periods %d and %d", ErrPeriodTable, prev.Number, next.Number)
		}
		if !next.Start.After(prev.Start) {
			return fmt.Errorf("%w: periods %d and %d out of order", ErrPeriodTable, prev.Number, next.Number)
		}
	}
	return nil
}
