package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormatValid(t *testing.T) {
	tests := []struct {
		format OutputFormat
		valid  bool
	}{
		{FormatYAML, true},
		{FormatJSON, true},
		{FormatTable, true},
		{OutputFormat("dir"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.Valid())
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"yaml", FormatYAML, true},
		{"YML", FormatYAML, true},
		{"json", FormatJSON, true},
		{"TABLE", FormatTable, true},
		{"invalid", OutputFormat("invalid"), false},
		{"", OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParseOutputFormat(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range ValidFormats() {
		_, ok := ParseOutputFormat(f)
		assert.True(t, ok, f)
	}
}
