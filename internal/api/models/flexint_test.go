package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "number", in: `{"displayOrder": 3}`, want: 3},
		{name: "numeric string", in: `{"displayOrder": "7"}`, want: 7},
		{name: "float", in: `{"displayOrder": 2.9}`, want: 2},
		{name: "garbage string", in: `{"displayOrder": "abc"}`, want: 0},
		{name: "empty string", in: `{"displayOrder": ""}`, want: 0},
		{name: "null", in: `{"displayOrder": null}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				DisplayOrder FlexInt `json:"displayOrder"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &body))
			assert.Equal(t, tt.want, body.DisplayOrder.Int())
		})
	}
}

func TestFlexIntPtr(t *testing.T) {
	var absent *FlexInt
	assert.Nil(t, absent.IntPtr())

	present := FlexInt(4)
	ptr := present.IntPtr()
	require.NotNil(t, ptr)
	assert.Equal(t, 4, *ptr)
}
