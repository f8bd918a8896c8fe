package buildenv

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))

// ErrorFunc constructs the error a failed validation is reported with.
// The caller chooses the concrete error type; the validators only
// provide the formatted message.
type ErrorFunc func(msg string) error

// ConfigError is the default error type for misconfigured options.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

// NewConfigError builds a ConfigError; it satisfies ErrorFunc.
func NewConfigError(msg string) error {
	return &ConfigError{msg: msg}
}

// ValidateDir checks that the option at key names an existing
// directory. It covers directories whose requirement depends on
// another option being set, which the schema's own path validation
// cannot express.
func (e *Env) ValidateDir(key string, newErr ErrorFunc) error {
	info, err := os.Stat(e.String(key))
	if err != nil || !info.IsDir() {
		return newErr(errorStyle.Render(fmt.Sprintf("ERROR: %s is not a valid directory.", key)))
	}
	return nil
}

// ParseInt coerces the option at key to an int in place.
func (e *Env) ParseInt(key string, newErr ErrorFunc) error {
	n, err := strconv.Atoi(e.String(key))
	if err != nil {
		return newErr(errorStyle.Render(fmt.Sprintf("ERROR: %s is not a valid value.", key)))
	}
	e.vars[key] = n
	return nil
}

// RequireVar checks that key is present in the environment at all,
// independent of its value.
func (e *Env) RequireVar(key string, newErr ErrorFunc) error {
	if !e.Has(key) {
		return newErr(errorStyle.Render(fmt.Sprintf("ERROR: Missing required %q parameter.", key)))
	}
	return nil
}
