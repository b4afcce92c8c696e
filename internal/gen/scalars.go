package gen

import (
	"strconv"

	"ffi-bindgen/primitive"
)

// scalarForm describes how a scalar kind is spelled in the generated Python.
type scalarForm struct {
	// Conv is the Python builtin that coerces and lifts the kind.
	Conv string
	// Suffix names the RustBufferBuilder.write* / RustBufferStream.read* pair.
	Suffix string
	// Size is the byte width as a Python literal.
	Size string
}

var scalars map[primitive.KindEnum]scalarForm

func init() {
	scalars = map[primitive.KindEnum]scalarForm{}

	for _, k := range primitive.All() {
		form := scalarForm{Size: strconv.Itoa(k.Bytes())}

		switch {
		case k == primitive.KindBool:
			form.Conv = "bool"
			form.Suffix = "I8"
		case k.IsFloat():
			form.Conv = "float"
			form.Suffix = map[int]string{32: "Float", 64: "Double"}[k.Bits()]
		case k.IsSigned():
			form.Conv = "int"
			form.Suffix = "I" + strconv.Itoa(k.Bits())
		case k.IsUnsigned():
			form.Conv = "int"
			form.Suffix = "U" + strconv.Itoa(k.Bits())
		}

		scalars[k] = form
	}
}

// enumSuffix is the buffer accessor pair for enum discriminants.
const enumSuffix = "I32"
