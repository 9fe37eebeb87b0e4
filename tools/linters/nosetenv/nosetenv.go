// Package nosetenv forbids changing the process environment from tests.
package nosetenv

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
)

const doc = `nosetenv: prevent os.Setenv, os.Unsetenv and t.Setenv in test files

Environment variables are process wide state, so tests that set them cannot
run in parallel. Tests build configuration from an in-memory map with
config.LoadFromMap and pass it to the code under test instead.
`

const message = "%s is forbidden in test files, build the configuration with config.LoadFromMap instead"

var Analyzer = &analysis.Analyzer{
	Name: "nosetenv",
	Doc:  doc,
	Run:  run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, file := range pass.Files {
		if !strings.HasSuffix(pass.Fset.Position(file.Package).Filename, "_test.go") {
			continue
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if name, ok := forbidden(pass, sel); ok {
				pass.Reportf(call.Pos(), message, name)
			}
			return true
		})
	}
	return nil, nil
}

func forbidden(pass *analysis.Pass, sel *ast.SelectorExpr) (string, bool) {
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return "", false
	}
	switch fn.Pkg().Path() {
	case "os":
		if fn.Name() == "Setenv" || fn.Name() == "Unsetenv" || fn.Name() == "Clearenv" {
			return "os." + fn.Name(), true
		}
	case "testing":
		if fn.Name() == "Setenv" {
			return "t.Setenv", true
		}
	}
	return "", false
}
