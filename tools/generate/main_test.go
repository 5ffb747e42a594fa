package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pelletier/go-toml/v2"
)

const testSymbols = `
package = "cuda"
imports = ["unsafe"]

[[function]]
name = "cuInit"
go = "Init"
params = "flags uint32"
result = "Result"
doc = "initializes the driver API."

[[function]]
name = "cuMemcpyHtoD_v2"
go = "MemcpyHtoD"
params = "dst DevicePtr, src unsafe.Pointer, n uintptr"
result = "Result"

[[function]]
name = "cuProfilerStop"
go = "ProfilerStop"
`

func TestGenerateGoCode(t *testing.T) {
	var decls Declarations
	if err := toml.Unmarshal([]byte(testSymbols), &decls); err != nil {
		t.Fatal(err)
	}
	code, err := generateGoCode(decls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(code)
	for _, want := range []string{
		"// Code generated by tools/generate from symbols.toml - DO NOT EDIT.\n",
		"package cuda\n",
		"\t\"unsafe\"\n\n\t\"github.com/agiangrant/cudl/internal/ffi\"\n",
		"var cuInit = ffi.Declare[func(flags uint32) Result](table, \"cuInit\")\n",
		"// Init initializes the driver API.\nfunc Init(flags uint32) Result {\n\treturn cuInit.Get()(flags)\n}\n",
		"// MemcpyHtoD calls cuMemcpyHtoD_v2.\nfunc MemcpyHtoD(dst DevicePtr, src unsafe.Pointer, n uintptr) Result {\n\treturn cuMemcpyHtoD_v2.Get()(dst, src, n)\n}\n",
		"func ProfilerStop() {\n\tcuProfilerStop.Get()()\n}\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated code missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateGoCodeDuplicate(t *testing.T) {
	decls := Declarations{
		Package: "cuda",
		Functions: []Function{
			{Name: "cuInit", Go: "Init"},
			{Name: "cuInit", Go: "Init2"},
		},
	}
	if _, err := generateGoCode(decls); err == nil {
		t.Error("expected error for duplicate declaration")
	}
}

func TestArgNames(t *testing.T) {
	tests := []struct {
		params string
		want   []string
	}{
		{params: "", want: nil},
		{params: "flags uint32", want: []string{"flags"}},
		{params: "m, n int32, alpha *float32", want: []string{"m", "n", "alpha"}},
		{params: "handle Handle, x uintptr, incx int32", want: []string{"handle", "x", "incx"}},
	}
	for _, test := range tests {
		got, err := argNames(test.params)
		if err != nil {
			t.Errorf("unexpected error for %q: %v", test.params, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("unexpected names for %q (-want +got):\n%s", test.params, diff)
		}
	}
	if _, err := argNames("a b c"); err == nil {
		t.Error("expected error for malformed parameter")
	}
}
