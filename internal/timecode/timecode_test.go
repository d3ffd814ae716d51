package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"90", 90.0, true},
		{"90.5", 90.5, true},
		{"1:30", 90.0, true},
		{"1:02:03", 3723.0, true},
		{"0:00", 0.0, true},
		{"3:07", 187.0, true},
		{" 1:30 ", 90.0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"1:2:3:4", 0, false},
		{"x:y", 0, false},
		{"1:y:3", 0, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.input)
		assert.Equal(t, tt.ok, ok, "Parse(%q) presence", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "Parse(%q)", tt.input)
		}
	}
}

func TestFormatForFilename(t *testing.T) {
	assert.Equal(t, "00-59", FormatForFilename(59, true))
	assert.Equal(t, "01-30", FormatForFilename(90, true))
	assert.Equal(t, "01-00-00", FormatForFilename(3600, true))
	assert.Equal(t, "01-02-03", FormatForFilename(3723, true))
	assert.Equal(t, "03-07", FormatForFilename(187.9, true), "fractional seconds truncate")
	assert.Equal(t, "", FormatForFilename(42, false), "absent value renders empty")
}

// Parsing the filename rendering of a parsed value must reproduce the same
// integer-truncated seconds. The hyphenated token is not re-parseable as a
// clock string, so the round trip goes through the colon form.
func TestParseFormatRoundTrip(t *testing.T) {
	for _, input := range []string{"90", "1:30", "1:02:03", "59", "3:07", "2:00:00"} {
		sec, ok := Parse(input)
		require.True(t, ok, "Parse(%q)", input)

		formatted := FormatForFilename(sec, true)
		back, ok := Parse(replaceHyphens(formatted))
		require.True(t, ok, "re-parse of %q", formatted)
		assert.Equal(t, float64(int(sec)), back, "round trip for %q", input)
	}
}

func replaceHyphens(s string) string {
	out := []byte(s)
	for i := range out {
		if out[i] == '-' {
			out[i] = ':'
		}
	}
	return string(out)
}

func TestNewRange(t *testing.T) {
	r, ok, err := NewRange("3:07", "3:21")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 187.0, r.Start)
	assert.Equal(t, 201.0, r.End)

	_, ok, err = NewRange("", "")
	require.NoError(t, err)
	assert.False(t, ok)

	// Malformed input is indistinguishable from absent input.
	_, ok, err = NewRange("abc", "xyz")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = NewRange("1:00", "")
	assert.Error(t, err, "one-sided range is a validation error")

	_, _, err = NewRange("", "1:00")
	assert.Error(t, err)
}

func TestRangeSuffix(t *testing.T) {
	r := Range{Start: 187, End: 201}
	assert.Equal(t, "03-07_to_03-21", r.Suffix())
}
