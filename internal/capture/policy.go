package capture

import (
	"fmt"
	"strings"
)

// Policy selects how a chunk of bytes is split into frames
type Policy int

const (
	PolicyFallback Policy = iota
	PolicyDirect
	PolicyExtract
)

var policyNames = map[Policy]string{
	PolicyFallback: "fallback",
	PolicyDirect:   "direct",
	PolicyExtract:  "extract",
}

// String returns the config name of the policy
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a config name to a Policy. Names are case-insensitive.
func ParsePolicy(name string) (Policy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return PolicyFallback, fmt.Errorf("unknown decode policy %q (valid: fallback, direct, extract)", name)
}
