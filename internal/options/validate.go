// Package options provides shared utilities for option validation across packages.
package options

import (
	"github.com/erraggy/oaspostman/oaserrors"
)

// ValidateSingleInputSource ensures exactly one input source is set.
// pkg prefixes the message (e.g. "converter") and hint lists the options the
// caller can use to pick a source.
func ValidateSingleInputSource(pkg, hint string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: pkg + ": must specify an input source (use " + hint + ")",
		}
	case count > 1:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: pkg + ": must specify exactly one input source",
		}
	}
	return nil
}
