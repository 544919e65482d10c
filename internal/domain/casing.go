package domain

import (
	"fmt"
	"strings"
)

// Casing is the case transformation applied to words before lookup or
// prediction. Models are usually trained on a single case, so inputs must
// match it.
type Casing string

const (
	CasingIgnore Casing = "ignore"
	CasingLower  Casing = "lower"
	CasingUpper  Casing = "upper"
)

// ParseCasing validates a user-supplied casing value. An empty string maps
// to CasingIgnore.
func ParseCasing(s string) (Casing, error) {
	switch Casing(strings.ToLower(strings.TrimSpace(s))) {
	case "", CasingIgnore:
		return CasingIgnore, nil
	case CasingLower:
		return CasingLower, nil
	case CasingUpper:
		return CasingUpper, nil
	}
	return "", &OpError{
		Op:   "domain.parse_casing",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("unknown casing %q (expected lower|upper|ignore)", s),
	}
}

// Apply transforms word according to the casing.
func (c Casing) Apply(word string) string {
	switch c {
	case CasingLower:
		return strings.ToLower(word)
	case CasingUpper:
		return strings.ToUpper(word)
	}
	return word
}
