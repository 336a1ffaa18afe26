package billing

import (
	"strings"
	"time"

	"github.com/aangaziz1996/elanet-sub000/models"
)

// Monthly prices in whole Rupiah, matched by substring because the package
// name is free text in the admin form ("Paket 10 Mbps", "10 Mbps Home", ...).
// Longest keywords first so "100 Mbps" never falls through to a shorter match.
var packagePrices = []struct {
	Keyword string
	Price   int64
}{
	{"100 Mbps", 350000},
	{"50 Mbps", 250000},
	{"20 Mbps", 200000},
	{"10 Mbps", 150000},
}

// DefaultPrice applies when no keyword matches the package name.
const DefaultPrice int64 = 125000

// PriceForPackage returns the monthly price for a package name.
func PriceForPackage(name string) int64 {
	for _, p := range packagePrices {
		if strings.Contains(name, p.Keyword) {
			return p.Price
		}
	}
	return DefaultPrice
}

// DateOnly truncates t to midnight UTC. All calculator arithmetic works on
// date-only values.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// latestConfirmedPeriodEnd returns the period end of the confirmed payment
// with the latest period end, false when no payment is confirmed.
func latestConfirmedPeriodEnd(payments []models.Payment) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, p := range payments {
		if p.Status != models.PaymentConfirmed {
			continue
		}
		end := DateOnly(p.PeriodEnd)
		if !found || end.After(latest) {
			latest = end
			found = true
		}
	}
	return latest, found
}

// latestCoveredPeriodEnd is like latestConfirmedPeriodEnd but also counts
// pending payments, used to anchor the next billing period.
func latestCoveredPeriodEnd(payments []models.Payment) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, p := range payments {
		if p.Status == models.PaymentRejected {
			continue
		}
		end := DateOnly(p.PeriodEnd)
		if !found || end.After(latest) {
			latest = end
			found = true
		}
	}
	return latest, found
}

// firstDueDate aligns the join date to the billing day: same month when the
// customer joined on or before the billing day, next month otherwise.
// time.Date normalizes month 13 to January of the next year, so December
// rolls over on its own.
func firstDueDate(c models.Customer) time.Time {
	join := DateOnly(c.JoinDate)
	due := time.Date(join.Year(), join.Month(), c.BillingDay, 0, 0, 0, 0, time.UTC)
	if join.Day() > c.BillingDay {
		due = due.AddDate(0, 1, 0)
	}
	return due
}

// NextDueDate computes when the customer's next payment is due.
//
// With a confirmed payment it is the day after the latest confirmed period
// end; when that already passed it moves to the billing day of the current
// month, or the next one. Without any confirmed payment it is the join date
// aligned to the billing day. The result is never before the join date nor
// before the latest confirmed period end.
func NextDueDate(c models.Customer, payments []models.Payment, now time.Time) time.Time {
	now = DateOnly(now)
	end, ok := latestConfirmedPeriodEnd(payments)
	if !ok {
		return firstDueDate(c)
	}
	due := end.AddDate(0, 0, 1)
	if due.Before(now) {
		due = time.Date(now.Year(), now.Month(), c.BillingDay, 0, 0, 0, 0, time.UTC)
		if due.Before(now) {
			due = due.AddDate(0, 1, 0)
		}
	}
	return due
}

// CurrentCycleStart returns the billing day anchoring the cycle that contains
// now: this month's billing day when it already passed (or is today), last
// month's otherwise.
func CurrentCycleStart(c models.Customer, now time.Time) time.Time {
	now = DateOnly(now)
	start := time.Date(now.Year(), now.Month(), c.BillingDay, 0, 0, 0, 0, time.UTC)
	if now.Day() < c.BillingDay {
		start = start.AddDate(0, -1, 0)
	}
	return start
}

// DueAmount computes what the customer currently owes. Zero is a valid steady
// state: not billable, already paid, or a submitted payment still awaiting
// review (billing again while the admin sits on a confirmation would
// double-charge).
func DueAmount(c models.Customer, payments []models.Payment, now time.Time) int64 {
	if c.Status == models.CustomerInactive || c.Status == models.CustomerTerminated {
		return 0
	}

	cycleStart := CurrentCycleStart(c, now)
	if end, ok := latestConfirmedPeriodEnd(payments); ok && !end.Before(cycleStart) {
		return 0
	}
	for _, p := range payments {
		if p.Status == models.PaymentPending && !DateOnly(p.PeriodEnd).Before(cycleStart) {
			return 0
		}
	}

	return PriceForPackage(c.PackageName)
}

// Period derives the [start, end] window a new payment covers: the day after
// the latest confirmed-or-pending period end, or the aligned join date for a
// first payment, spanning exactly one calendar month minus a day.
//
// Periods stay disjoint as long as payments are confirmed in chronological
// order; confirming out of order can overlap them, which is accepted rather
// than silently patched.
func Period(c models.Customer, payments []models.Payment) (start, end time.Time) {
	if covered, ok := latestCoveredPeriodEnd(payments); ok {
		start = covered.AddDate(0, 0, 1)
	} else {
		start = firstDueDate(c)
	}
	end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end
}

// CoversDate reports whether the payment's period contains d.
func CoversDate(p models.Payment, d time.Time) bool {
	d = DateOnly(d)
	return !DateOnly(p.PeriodStart).After(d) && !DateOnly(p.PeriodEnd).Before(d)
}
