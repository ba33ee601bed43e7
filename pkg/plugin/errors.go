package plugin

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilModule is returned when a factory reports success without a module.
var ErrNilModule = errors.New("factory returned no module")

// UnknownPluginError is returned when a plugin name has no registered factory.
type UnknownPluginError struct {
	Name      string
	Available []string
}

func (e *UnknownPluginError) Error() string {
	return fmt.Sprintf("unknown plugin %q\nAvailable plugins: %v\nHint: Check markdown.plugin in flatlint.yaml", e.Name, e.Available)
}

// IncompatibleError is returned when a plugin module lacks the nested
// structure the loader needs.
type IncompatibleError struct {
	Name    string
	Missing []string // path segments, outermost first, up to the first absent one
}

// Path renders the missing path in dotted form.
func (e *IncompatibleError) Path() string {
	return strings.Join(e.Missing, ".")
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("plugin %q is missing %s", e.Name, e.Path())
}
