package colors_test

import (
	"testing"

	"github.com/arthur-debert/icontheme/pkg/colors"
	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"#ABC", "#aabbcc", false},
		{"#aabbcc", "#aabbcc", false},
		{" #AABBCC ", "#aabbcc", false},
		{"#0f0", "#00ff00", false},
		{"abc", "", true},
		{"#abcd", "", true},
		{"#ggg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := colors.Normalize(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidHex(t *testing.T) {
	assert.True(t, colors.ValidHex("#abc"))
	assert.True(t, colors.ValidHex("#A1B2C3"))
	assert.False(t, colors.ValidHex("#abcd"))
	assert.False(t, colors.ValidHex("a1b2c3d"))
	assert.False(t, colors.ValidHex("#a1b2cz"))
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0, colors.Luminance("#000000"), 0.001)
	assert.InDelta(t, 255, colors.Luminance("#ffffff"), 0.001)
	assert.InDelta(t, 76.245, colors.Luminance("#ff0000"), 0.001)
	assert.InDelta(t, 0, colors.Luminance("#fff"), 0.001)
}
