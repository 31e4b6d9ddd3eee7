// Package options provides shared validation helpers for option structs.
package options

import "fmt"

// ValidateSingleInputSource checks that exactly one of the given input
// sources is set. Each boolean reports whether the corresponding source was
// provided. When none are set the returned error carries noSourceMsg; when
// more than one is set it carries multiSourceMsg.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	if count == 0 {
		return fmt.Errorf("%s", noSourceMsg)
	}
	if count > 1 {
		return fmt.Errorf("%s", multiSourceMsg)
	}

	return nil
}
