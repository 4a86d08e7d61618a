package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumemash/internal/models"
)

func fieldFlags(value string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("field", "", "")
	if value != "" {
		flags.Set("field", value)
	}
	return flags
}

func TestParseJobField(t *testing.T) {
	field, err := ParseJobField(fieldFlags("software"))
	require.NoError(t, err)
	assert.Equal(t, "software", field)

	field, err = ParseJobField(fieldFlags("  Finance "))
	require.NoError(t, err)
	assert.Equal(t, "finance", field)

	field, err = ParseJobField(fieldFlags(""))
	require.NoError(t, err)
	assert.Equal(t, "unspecified", field)

	_, err = ParseJobField(fieldFlags("astrology"))
	assert.Error(t, err)
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields(nil)
	require.NoError(t, err)
	assert.Equal(t, models.JobFields, fields)

	fields, err = ParseFields([]string{"software", " DATA "})
	require.NoError(t, err)
	assert.Equal(t, []string{"software", "data"}, fields)

	_, err = ParseFields([]string{"software", "astrology"})
	assert.Error(t, err)
}
