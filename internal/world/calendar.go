package world

import "fmt"

// Season values follow the host calendar ordering.
type Season int

const (
	SeasonFall Season = iota
	SeasonSummer
	SeasonSpring
	SeasonWinter
)

func (s Season) String() string {
	switch s {
	case SeasonFall:
		return "fall"
	case SeasonSummer:
		return "summer"
	case SeasonSpring:
		return "spring"
	case SeasonWinter:
		return "winter"
	default:
		return fmt.Sprintf("season(%d)", int(s))
	}
}

const (
	MonthsPerYear = 12
	DaysPerMonth  = 30
)

var monthNames = [MonthsPerYear]string{
	"Morning Star", "Sun's Dawn", "First Seed", "Rain's Hand",
	"Second Seed", "Midyear", "Sun's Height", "Last Seed",
	"Hearthfire", "Frostfall", "Sun's Dusk", "Evening Star",
}

// Clock is a point in the world calendar. Month and Day are zero-based.
type Clock struct {
	Year  int `yaml:"year"`
	Month int `yaml:"month"`
	Day   int `yaml:"day"`
}

// Season maps the month onto its season: Evening Star through Sun's Dawn is
// winter, then three months each of spring, summer and fall.
func (c Clock) Season() Season {
	switch m := normalizeMonth(c.Month); {
	case m == 11 || m <= 1:
		return SeasonWinter
	case m <= 4:
		return SeasonSpring
	case m <= 7:
		return SeasonSummer
	default:
		return SeasonFall
	}
}

// MonthName returns the calendar name of the clock's month.
func (c Clock) MonthName() string {
	return monthNames[normalizeMonth(c.Month)]
}

// AddDays advances the clock, rolling over months and years.
func (c Clock) AddDays(days int) Clock {
	total := (c.Year*MonthsPerYear+c.Month)*DaysPerMonth + c.Day + days
	if total < 0 {
		total = 0
	}
	c.Day = total % DaysPerMonth
	months := total / DaysPerMonth
	c.Month = months % MonthsPerYear
	c.Year = months / MonthsPerYear
	return c
}

func (c Clock) String() string {
	return fmt.Sprintf("%d %s, year %d", c.Day+1, c.MonthName(), c.Year)
}

func normalizeMonth(m int) int {
	m %= MonthsPerYear
	if m < 0 {
		m += MonthsPerYear
	}
	return m
}
