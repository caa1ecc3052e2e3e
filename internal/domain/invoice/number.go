package invoice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Invoice numbers carry a human-readable revision chain:
//
//	BASE                     original
//	BASE-rev.2-143512        first recreation
//	BASE-rev.3-091204        second recreation
//
// The trailing suffix is derived from the wall clock so that two recreations
// of the same base in rapid succession cannot collide. The number is display
// only; PredecessorInvoiceID is the authoritative linkage.
var revisionPattern = regexp.MustCompile(`-rev\.(\d+)(?:-\d+)?$`)

// BaseNumber strips the revision suffix, returning the shared base of a
// chain.
func BaseNumber(number string) string {
	if loc := revisionPattern.FindStringIndex(number); loc != nil {
		return strings.TrimSpace(number[:loc[0]])
	}
	return strings.TrimSpace(number)
}

// Revision parses the revision counter out of a number. An unsuffixed
// original counts as revision 1.
func Revision(number string) int {
	m := revisionPattern.FindStringSubmatch(number)
	if m == nil {
		return 1
	}
	rev, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return rev
}

// NextNumber composes the successor number for a recreation at `now`.
func NextNumber(original string, now time.Time) string {
	return fmt.Sprintf("%s-rev.%d-%s", BaseNumber(original), Revision(original)+1, now.Format("150405"))
}
