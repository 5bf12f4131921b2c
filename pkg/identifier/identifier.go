// Package identifier generates the prefixed ids used across every entity
// table, e.g. "ord_1756700000000_3f2a9c1b". The millisecond timestamp keeps
// ids roughly sortable by creation time; the random suffix disambiguates
// ids minted within the same millisecond.
package identifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	PrefixUser          = "u"
	PrefixProduct       = "p"
	PrefixCategory      = "cat"
	PrefixOrder         = "ord"
	PrefixOrderItem     = "itm"
	PrefixBanner        = "bn"
	PrefixPaymentMethod = "pm"
	PrefixNotification  = "ntf"
)

// New returns an id of the form "<prefix>_<unix-millis>_<random>".
func New(prefix string) string {
	return NewAt(prefix, time.Now())
}

// NewAt is New with an explicit timestamp, for deterministic tests.
func NewAt(prefix string, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%d_%s", prefix, at.UnixMilli(), suffix)
}

// HasPrefix reports whether id carries the given entity prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"_")
}
