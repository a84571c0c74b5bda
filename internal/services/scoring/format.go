package scoring

import (
	"strconv"
	"time"
)

// dateLayout renders dates the way the French locale does (dd/mm/yyyy hh:mm)
const dateLayout = "02/01/2006 15:04"

// FormatScore renders a score value
func FormatScore(value int) string {
	return strconv.Itoa(value)
}

// FormatSignedScore renders a score value with an explicit sign, as used for
// quick entry values (+25, 0 as +0, -10)
func FormatSignedScore(value int) string {
	if value >= 0 {
		return "+" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// FormatDate renders an instant as a short date and time in its own location
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
