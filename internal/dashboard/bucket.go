package dashboard

import (
	"fmt"
	"strings"
	"time"
)

// TimezonePolicy decides which calendar a timestamp's month is read in.
type TimezonePolicy string

const (
	// PolicyLocal reads the month in the timestamp's own location, as
	// stored. No normalization.
	PolicyLocal TimezonePolicy = "local"
	PolicyUTC   TimezonePolicy = "utc"
	// PolicyStore converts to the store's configured IANA zone first.
	PolicyStore TimezonePolicy = "store"
)

func ParseTimezonePolicy(s string) (TimezonePolicy, error) {
	switch p := TimezonePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyLocal, PolicyUTC, PolicyStore:
		return p, nil
	case "":
		return PolicyLocal, nil
	default:
		return "", fmt.Errorf("unknown timezone policy %q", s)
	}
}

// Bucketer maps a timestamp to its month bucket, 0 (January) to 11.
// Every year folds into the same twelve buckets.
type Bucketer struct {
	loc *time.Location // nil keeps the timestamp's own location
}

func NewBucketer(loc *time.Location) Bucketer {
	return Bucketer{loc: loc}
}

func (b Bucketer) BucketFor(t time.Time) int {
	if b.loc != nil {
		t = t.In(b.loc)
	}
	return int(t.Month()) - 1
}
