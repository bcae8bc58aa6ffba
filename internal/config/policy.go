package config

import (
	"fmt"

	"github.com/dshills/rewind"
	"github.com/dshills/rewind/policy"
)

// BuildPolicy translates the history section into a snapshot policy.
func (h HistoryConfig) BuildPolicy() (rewind.Policy, error) {
	switch h.Policy {
	case "", "never":
		return policy.Never(), nil
	case "always":
		return policy.Always(), nil
	case "every":
		return policy.EveryN(h.Interval), nil
	case "distance":
		return policy.ByDistance(h.Interval), nil
	case "elapsed":
		return policy.ByElapsed(h.Elapsed), nil
	default:
		return nil, fmt.Errorf("unknown snapshot policy %q", h.Policy)
	}
}
