package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enumkit"
)

type paint struct {
	Name  string       `json:"name" yaml:"name"`
	Color Value[Color] `json:"color" yaml:"color"`
}

func TestValue_JSON(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	MustRegister(newColors(t))

	var p paint
	require.NoError(t, json.Unmarshal([]byte(`{"name":"sky","color":"BLUE"}`), &p))
	assert.Equal(t, Blue, p.Color.V)

	data, err := json.Marshal(paint{Name: "grass", Color: Of(Green)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"grass","color":"GREEN"}`, string(data))

	err = json.Unmarshal([]byte(`{"color":"blue"}`), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumkit.ErrNameNotFound)

	_, err = json.Marshal(paint{Color: Of(Color(42))})
	assert.Error(t, err)
}

func TestValue_YAML(t *testing.T) {
	Clear()
	t.Cleanup(Clear)
	MustRegister(newColors(t))

	var p paint
	require.NoError(t, yaml.Unmarshal([]byte("name: rose\ncolor: RED\n"), &p))
	assert.Equal(t, Red, p.Color.V)

	data, err := yaml.Marshal(paint{Name: "sea", Color: Of(Blue)})
	require.NoError(t, err)
	assert.Equal(t, "name: sea\ncolor: BLUE\n", string(data))

	err = yaml.Unmarshal([]byte("color: Red\n"), &p)
	assert.ErrorIs(t, err, enumkit.ErrNameNotFound)

	err = yaml.Unmarshal([]byte("color: [RED]\n"), &p)
	require.Error(t, err)
	assert.True(t, enumkit.IsKind(err, enumkit.KindInvalidArgument))
}

func TestValue_Unregistered(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	var v Value[Color]
	err := v.UnmarshalText([]byte("RED"))
	assert.ErrorIs(t, err, enumkit.ErrTypeNotRegistered)

	_, err = Of(Red).MarshalText()
	assert.ErrorIs(t, err, enumkit.ErrTypeNotRegistered)

	// falls back to the value's own formatting
	assert.Equal(t, "RED", Of(Red).String())
}
