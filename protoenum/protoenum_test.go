package protoenum

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/zero-day-ai/enumkit"
	"github.com/zero-day-ai/enumkit/enum"
)

const fieldTypeName = "google.protobuf.FieldDescriptorProto.Type"

func TestLookup(t *testing.T) {
	ed := descriptorpb.FieldDescriptorProto_TYPE_INT64.Descriptor()

	tests := []struct {
		name    string
		input   string
		want    protoreflect.EnumNumber
		wantErr bool
	}{
		{name: "declared value", input: "TYPE_STRING", want: 9},
		{name: "first value", input: "TYPE_DOUBLE", want: 1},
		{name: "lower case", input: "type_string", wantErr: true},
		{name: "unknown", input: "TYPE_UUID", wantErr: true},
		{name: "full name is not a short name", input: fieldTypeName + ".TYPE_STRING", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Lookup(ed, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, enumkit.ErrNameNotFound)
				assert.Contains(t, err.Error(), fieldTypeName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Number())
		})
	}

	_, err := Lookup(nil, "TYPE_STRING")
	assert.True(t, enumkit.IsKind(err, enumkit.KindInvalidArgument))
}

func TestLookupByFullName(t *testing.T) {
	v, err := LookupByFullName(fieldTypeName, "TYPE_BOOL")
	require.NoError(t, err)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_BOOL, v)

	v, err = LookupByFullName("google.protobuf.NullValue", "NULL_VALUE")
	require.NoError(t, err)
	assert.Equal(t, structpb.NullValue_NULL_VALUE, v)

	_, err = LookupByFullName(fieldTypeName, "TYPE_BOOLEAN")
	assert.ErrorIs(t, err, enumkit.ErrNameNotFound)

	_, err = LookupByFullName("example.Missing", "A")
	assert.ErrorIs(t, err, enumkit.ErrTypeNotRegistered)
	assert.True(t, enumkit.IsKind(err, enumkit.KindNotFound))
}

func TestNew(t *testing.T) {
	s, err := New[descriptorpb.FieldDescriptorProto_Type]()
	require.NoError(t, err)

	assert.Equal(t, fieldTypeName, s.TypeName())
	assert.Equal(t, 18, s.Len())

	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE, first)

	for _, m := range s.Members() {
		assert.Equal(t, m.Name, m.Value.String())
	}

	got, err := s.Lookup("TYPE_MESSAGE")
	require.NoError(t, err)
	assert.Equal(t, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, got)

	_, err = New[protoreflect.Enum]()
	assert.True(t, enumkit.IsKind(err, enumkit.KindInvalidArgument))
}

func TestRegister(t *testing.T) {
	enum.Clear()
	t.Cleanup(enum.Clear)

	_, err := Register[structpb.NullValue]()
	require.NoError(t, err)

	v, err := enum.Lookup(reflect.TypeFor[structpb.NullValue](), "NULL_VALUE")
	require.NoError(t, err)
	assert.Equal(t, structpb.NullValue_NULL_VALUE, v)

	_, err = Register[structpb.NullValue]()
	assert.True(t, enumkit.IsKind(err, enumkit.KindValidation))
}
