package editor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDFunc produces candidate identifiers for new sections and fields. The
// default draws short tokens from a UUID; tests inject deterministic
// generators.
type IDFunc func() string

func defaultIDFunc() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:8]
}

// freshID returns a candidate id that does not collide with any id already
// in use. Collisions re-roll the generator; a generator that keeps colliding
// gets a numeric suffix so the loop always terminates.
func freshID(gen IDFunc, taken map[string]struct{}) string {
	for attempt := 0; attempt < 100; attempt++ {
		id := gen()
		if _, exists := taken[id]; !exists {
			return id
		}
	}
	base := gen()
	for suffix := 1; ; suffix++ {
		id := fmt.Sprintf("%s-%d", base, suffix)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}
