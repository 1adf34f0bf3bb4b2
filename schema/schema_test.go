package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEnum_Marshal(t *testing.T) {
	s := StringEnum("primary colors", "RED", "GREEN", "BLUE")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","description":"primary colors","enum":["RED","GREEN","BLUE"]}`, string(data))
}

func TestJSON_Validate(t *testing.T) {
	colors := StringEnum("", "RED", "GREEN", "BLUE")

	tests := []struct {
		name    string
		schema  JSON
		value   any
		wantErr bool
	}{
		{name: "declared name", schema: colors, value: "GREEN"},
		{name: "wrong case", schema: colors, value: "green", wantErr: true},
		{name: "unknown name", schema: colors, value: "YELLOW", wantErr: true},
		{name: "not a string", schema: colors, value: 1, wantErr: true},
		{name: "nil with type", schema: colors, value: nil, wantErr: true},
		{name: "nil without type", schema: Enum(1, 2), value: nil},
		{name: "untyped enum", schema: Enum(1, 2), value: 2},
		{name: "untyped enum miss", schema: Enum(1, 2), value: 3, wantErr: true},
		{name: "integer", schema: JSON{Type: "integer"}, value: int32(4)},
		{name: "integer mismatch", schema: JSON{Type: "integer"}, value: "4", wantErr: true},
		{name: "plain string", schema: String(), value: "anything"},
		{name: "unsupported type", schema: JSON{Type: "object"}, value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJSON_WithersDoNotMutate(t *testing.T) {
	base := StringEnum("", "A", "B")
	titled := base.WithTitle("Letters").WithDefault("A")

	assert.Empty(t, base.Title)
	assert.Nil(t, base.Default)
	assert.Equal(t, "Letters", titled.Title)
	assert.Equal(t, "A", titled.Default)
}
