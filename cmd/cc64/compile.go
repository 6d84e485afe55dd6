/*
File    : cc64/cmd/cc64/compile.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/akashmaji946/cc64/codegen"
	"github.com/akashmaji946/cc64/parser"
)

// compile runs one source string through the parser and code
// generator, returning the emitted assembly. On a parse failure it
// returns the first recorded error; no partial assembly is ever
// returned alongside an error.
func compile(source string, cfg codegen.Config) (string, error) {
	par := parser.NewParser(source)
	root := par.Parse()
	if par.HasErrors() {
		return "", fmt.Errorf("%s", strings.Join(par.GetErrors(), "\n"))
	}

	var buf bytes.Buffer
	gen := codegen.NewGenerator(&buf)
	gen.Configure(cfg)
	if err := gen.Generate(root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
