package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1.2.3", want: "1.2.3"},
		{input: "v1.2.3", want: "1.2.3"},
		{input: "0.1.0-dev", want: "0.1.0-dev"},
		{input: "1.2", wantErr: true},
		{input: "", wantErr: true},
		{input: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestString(t *testing.T) {
	out, err := String()
	require.NoError(t, err)
	assert.Contains(t, out, "tablekit "+GetVersion())
	assert.Contains(t, out, GetGitCommit())

	saved := version
	t.Cleanup(func() { version = saved })
	version = "not-a-version"
	_, err = String()
	assert.ErrorIs(t, err, ErrInvalidVersion)
}
