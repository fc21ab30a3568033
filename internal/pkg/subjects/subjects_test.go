package subjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []int64
		wantErr bool
	}{
		{name: "ordered list", text: "[101,103,102]", want: []int64{101, 103, 102}},
		{name: "single id", text: "[42]", want: []int64{42}},
		{name: "empty array", text: "[]", want: []int64{}},
		{name: "blank text", text: "", want: nil},
		{name: "whitespace only", text: "   ", want: nil},
		{name: "json null", text: "null", want: nil},
		{name: "duplicates kept", text: "[7,7,7]", want: []int64{7, 7, 7}},
		{name: "not json", text: "not-json", wantErr: true},
		{name: "string tokens", text: `["101","103"]`, wantErr: true},
		{name: "fractional token", text: "[1.5]", wantErr: true},
		{name: "object instead of array", text: `{"id":101}`, wantErr: true},
		{name: "truncated array", text: "[101,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	text, err := Encode([]int64{101, 103})
	require.NoError(t, err)
	assert.Equal(t, "[101,103]", text)

	// nil encodes to an empty array rather than null so the stored text
	// always round-trips through Decode.
	text, err = Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ids := []int64{5, 1, 9, 1}
	text, err := Encode(ids)
	require.NoError(t, err)

	got, err := Decode(text)
	require.NoError(t, err)
	assert.Equal(t, ids, got, "round trip must preserve order and duplicates")
}
