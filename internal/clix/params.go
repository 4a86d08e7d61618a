package clix

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"resumemash/internal/models"
)

// ParseJobField reads the --field flag, trims it, and validates it against
// the known job fields. An empty flag falls back to "unspecified".
func ParseJobField(flags *pflag.FlagSet) (string, error) {
	raw, _ := flags.GetString("field")
	field := strings.ToLower(strings.TrimSpace(raw))
	if field == "" {
		field = "unspecified"
	}
	if !models.IsKnownJobField(field) {
		return "", fmt.Errorf("unknown job field %q (known: %s)", raw, strings.Join(models.JobFields, ", "))
	}
	return field, nil
}

// ParseFields reads positional field arguments, defaulting to every known
// field when none are given. Unknown names fail fast before any work runs.
func ParseFields(args []string) ([]string, error) {
	if len(args) == 0 {
		return models.JobFields, nil
	}
	fields := make([]string, 0, len(args))
	for _, a := range args {
		field := strings.ToLower(strings.TrimSpace(a))
		if !models.IsKnownJobField(field) {
			return nil, fmt.Errorf("unknown job field %q (known: %s)", a, strings.Join(models.JobFields, ", "))
		}
		fields = append(fields, field)
	}
	return fields, nil
}
