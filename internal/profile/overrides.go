package profile

import (
	"fmt"
	"strings"
)

const (
	// MaxOverrides is the most --set flags accepted in one invocation.
	MaxOverrides = 100

	maxOverrideKeyLen   = 64
	maxOverrideValueLen = 256
	keyValueParts       = 2
)

// ParseOverrides parses key=value pairs into a map. Later pairs win.
func ParseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) > MaxOverrides {
		return nil, fmt.Errorf("too many overrides: %d (max %d)", len(pairs), MaxOverrides)
	}

	overrides := make(map[string]string, len(pairs))
	for _, p := range pairs {
		parts := strings.SplitN(p, "=", keyValueParts)
		if len(parts) != keyValueParts {
			return nil, fmt.Errorf("invalid override %q: expected key=value", p)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key == "" {
			return nil, fmt.Errorf("override key cannot be empty in %q", p)
		}
		if len(key) > maxOverrideKeyLen {
			return nil, fmt.Errorf("override key too long: %d bytes (max %d)", len(key), maxOverrideKeyLen)
		}
		if len(value) > maxOverrideValueLen {
			return nil, fmt.Errorf("override value too large for key %q: %d bytes (max %d)",
				key, len(value), maxOverrideValueLen)
		}
		overrides[key] = value
	}
	return overrides, nil
}
