// Package validflag reports qtypes container literals that describe a
// predicate but leave Valid unset. Such a container is treated as absent by
// every consumer, so the predicate is silently ignored.
package validflag

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const qtypesPath = "github.com/qolzam/qtypes"

const doc = `validflag: report qtypes containers built without Valid

A qtypes.String, Int64, Uint64, Float64 or Timestamp only takes part in
filtering when Valid is true. A composite literal that sets Values, Type,
Negation or Insensitive without Valid is almost always a mistake; use one of
the constructors such as qtypes.EqualInt64 or set Valid explicitly.
`

var Analyzer = &analysis.Analyzer{
	Name:     "validflag",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var containers = map[string]bool{
	"String":    true,
	"Int64":     true,
	"Uint64":    true,
	"Float64":   true,
	"Timestamp": true,
}

var operands = map[string]bool{
	"Values":      true,
	"Type":        true,
	"Negation":    true,
	"Insensitive": true,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CompositeLit)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		lit := n.(*ast.CompositeLit)

		name, ok := container(pass.TypesInfo.TypeOf(lit))
		if !ok {
			return
		}

		var set []string
		for _, elt := range lit.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				return
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				continue
			}
			if key.Name == "Valid" {
				return
			}
			if operands[key.Name] {
				set = append(set, key.Name)
			}
		}
		if len(set) == 0 {
			return
		}
		pass.Reportf(lit.Pos(), "qtypes.%s literal sets %s but not Valid, so the filter stays inactive", name, strings.Join(set, ", "))
	})

	return nil, nil
}

func container(t types.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != qtypesPath || !containers[obj.Name()] {
		return "", false
	}
	return obj.Name(), true
}
