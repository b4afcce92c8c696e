package naming

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleClassName() {
	fmt.Println(ClassName("my_cool_enum"))
	fmt.Println(ClassName("Sequence_Record_foo_bar"))
	fmt.Println(FuncName("copieDictionnaire"))
	fmt.Println(ConstName("integer-overflow"))
	// Output:
	// MyCoolEnum
	// SequenceRecordFooBar
	// copie_dictionnaire
	// INTEGER_OVERFLOW
}

func TestClassName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"my_cool_enum", "MyCoolEnum"},
		{"MyCoolEnum", "MyCoolEnum"},
		{"myCoolEnum", "MyCoolEnum"},
		{"XMLParser", "XmlParser"},
		{"Optional_String", "OptionalString"},
		{"Map_Int32", "MapInt32"},
		{"point", "Point"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassName(tt.in), tt.in)
	}
}

func TestCasingIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"my_cool_enum", "MyCoolEnum", "getHTTPResponse", "order-id", "Record_foo"}

	for _, in := range inputs {
		once := ClassName(in)
		assert.Equal(t, once, ClassName(once), "ClassName(%q)", in)

		snake := FuncName(in)
		assert.Equal(t, snake, FuncName(snake), "FuncName(%q)", in)

		shouty := ConstName(in)
		assert.Equal(t, shouty, ConstName(shouty), "ConstName(%q)", in)
	}
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"getHTTPResponse", "get_http_response"},
		{"OrderID", "order_id"},
		{"checked_add", "checked_add"},
		{"__private", "private"},
		{"Int32", "int32"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FuncName(tt.in), tt.in)
		assert.Equal(t, tt.want, VarName(tt.in), tt.in)
	}
}

func TestConstName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UN", ConstName("un"))
	assert.Equal(t, "INTEGER_OVERFLOW", ConstName("IntegerOverflow"))
	assert.Equal(t, "HTTP_ERROR", ConstName("HTTPError"))
}
