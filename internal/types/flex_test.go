package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `42.5`, 42.5},
		{"numeric string", `"102.5"`, 102.5},
		{"integer string", `"7"`, 7},
		{"junk string", `"heavy"`, 0},
		{"null", `null`, 0},
		{"object", `{"kg":100}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.Equal(t, tt.want, f.Float64())
		})
	}
}

func TestFlexNumberMarshal(t *testing.T) {
	raw, err := json.Marshal(FlexNumber(102.5))
	require.NoError(t, err)
	assert.Equal(t, `102.5`, string(raw))
}

func TestFlexListUnmarshal(t *testing.T) {
	type item struct {
		N int `json:"n"`
	}

	var fromArray FlexList[item]
	require.NoError(t, json.Unmarshal([]byte(`[{"n":1},{"n":2}]`), &fromArray))
	assert.Len(t, fromArray.Slice(), 2)

	var fromObject FlexList[item]
	require.NoError(t, json.Unmarshal([]byte(`{"n":3}`), &fromObject))
	require.Len(t, fromObject.Slice(), 1)
	assert.Equal(t, 3, fromObject[0].N)

	var fromNull FlexList[item]
	require.NoError(t, json.Unmarshal([]byte(`null`), &fromNull))
	assert.Empty(t, fromNull.Slice())

	var bad FlexList[item]
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}
