// pkg/wheel/validate_test.go

package wheel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{name: "below_minimum", count: 1, wantErr: true},
		{name: "zero", count: 0, wantErr: true},
		{name: "negative", count: -5, wantErr: true},
		{name: "minimum", count: 2, wantErr: false},
		{name: "middle", count: 6, wantErr: false},
		{name: "maximum", count: 10, wantErr: false},
		{name: "above_maximum", count: 11, wantErr: true},
		{name: "far_above_maximum", count: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidCount(tt.count)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "2-10")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty_line", input: "", wantErr: true},
		{name: "plain_text", input: "Pizza", wantErr: false},
		{name: "internal_whitespace", input: "Pizza Margherita", wantErr: false},
		{name: "leading_whitespace_preserved", input: "  Sushi", wantErr: false},
		{name: "whitespace_only_counts_as_content", input: "   ", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NonEmpty(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidOptions(t *testing.T) {
	assert.NoError(t, ValidOptions(OptionList{"Pizza", "Sushi"}))
	assert.Error(t, ValidOptions(OptionList{"Pizza"}))
	assert.Error(t, ValidOptions(OptionList{"Pizza", ""}))

	err := ValidOptions(OptionList{"Pizza", "", "Tacos"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "option 2")
}
