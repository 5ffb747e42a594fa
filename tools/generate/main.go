// Command generate writes the symbol table and call wrappers of a vendor
// module from its symbols.toml declaration list.
//
// Usage, from a module directory:
//
//	go run ../tools/generate -dir .
package main

import (
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Declarations is the content of a symbols.toml file.
type Declarations struct {
	// Package is the Go package name of the generated file.
	Package string `toml:"package"`
	// Imports lists extra standard library imports the signatures need.
	Imports   []string   `toml:"imports"`
	Functions []Function `toml:"function"`
}

// Function declares one native function.
type Function struct {
	// Name is the exported native symbol name.
	Name string `toml:"name"`
	// Go is the name of the generated wrapper.
	Go string `toml:"go"`
	// Params is the Go parameter list, e.g. "handle Handle, n int32".
	Params string `toml:"params"`
	// Result is the Go result type, empty for void functions.
	Result string `toml:"result"`
	// Doc completes the wrapper's doc comment after its name.
	Doc string `toml:"doc"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir := flag.String("dir", ".", "module directory containing symbols.toml")
	out := flag.String("out", "symbols_gen.go", "output file name within dir")
	flag.Parse()

	data, err := os.ReadFile(filepath.Join(*dir, "symbols.toml"))
	if err != nil {
		return err
	}
	var decls Declarations
	if err := toml.Unmarshal(data, &decls); err != nil {
		return fmt.Errorf("failed to parse symbols.toml: %w", err)
	}

	code, err := generateGoCode(decls)
	if err != nil {
		return err
	}
	path := filepath.Join(*dir, *out)
	if err := os.WriteFile(path, code, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("✓ Generated %s (%d symbols)\n", path, len(decls.Functions))
	return nil
}

func generateGoCode(decls Declarations) ([]byte, error) {
	if decls.Package == "" {
		return nil, fmt.Errorf("symbols.toml: missing package")
	}

	var b strings.Builder
	b.WriteString("// Code generated by tools/generate from symbols.toml - DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", decls.Package)
	b.WriteString("import (\n")
	for _, imp := range decls.Imports {
		fmt.Fprintf(&b, "\t%q\n", imp)
	}
	if len(decls.Imports) != 0 {
		b.WriteString("\n")
	}
	b.WriteString("\t\"github.com/agiangrant/cudl/internal/ffi\"\n")
	b.WriteString(")\n")

	seen := make(map[string]bool)
	for _, fn := range decls.Functions {
		if fn.Name == "" || fn.Go == "" {
			return nil, fmt.Errorf("symbols.toml: function needs name and go: %+v", fn)
		}
		if seen[fn.Name] {
			return nil, fmt.Errorf("symbols.toml: %s declared twice", fn.Name)
		}
		seen[fn.Name] = true

		args, err := argNames(fn.Params)
		if err != nil {
			return nil, fmt.Errorf("symbols.toml: %s: %w", fn.Name, err)
		}
		sig := fmt.Sprintf("func(%s)", fn.Params)
		if fn.Result != "" {
			sig += " " + fn.Result
		}

		fmt.Fprintf(&b, "\nvar %s = ffi.Declare[%s](table, %q)\n\n", fn.Name, sig, fn.Name)
		if fn.Doc != "" {
			fmt.Fprintf(&b, "// %s %s\n", fn.Go, fn.Doc)
		} else {
			fmt.Fprintf(&b, "// %s calls %s.\n", fn.Go, fn.Name)
		}
		fmt.Fprintf(&b, "func %s(%s)", fn.Go, fn.Params)
		if fn.Result != "" {
			fmt.Fprintf(&b, " %s", fn.Result)
		}
		b.WriteString(" {\n\t")
		if fn.Result != "" {
			b.WriteString("return ")
		}
		fmt.Fprintf(&b, "%s.Get()(%s)\n}\n", fn.Name, strings.Join(args, ", "))
	}

	return format.Source([]byte(b.String()))
}

// argNames returns the parameter names of a Go parameter list in which
// every parameter is named, e.g. "m, n int32, alpha *float32".
func argNames(params string) ([]string, error) {
	params = strings.TrimSpace(params)
	if params == "" {
		return nil, nil
	}
	var names []string
	for _, p := range strings.Split(params, ",") {
		fields := strings.Fields(p)
		switch len(fields) {
		case 1, 2:
			names = append(names, fields[0])
		default:
			return nil, fmt.Errorf("cannot parse parameter %q", p)
		}
	}
	return names, nil
}
