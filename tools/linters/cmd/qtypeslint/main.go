// Command qtypeslint runs the repository analyzers.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/qolzam/qtypes/tools/linters/nosetenv"
	"github.com/qolzam/qtypes/tools/linters/validflag"
)

func main() {
	multichecker.Main(
		nosetenv.Analyzer,
		validflag.Analyzer,
	)
}
