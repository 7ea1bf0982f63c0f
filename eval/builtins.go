package eval

import (
	"time"

	"github.com/akashmaji946/orin/environment"
	"github.com/akashmaji946/orin/procedure"
	"github.com/akashmaji946/orin/value"
)

// registerBuiltins installs the language's entire standard library — a
// single 0-arity clock native — into globals (§6).
func registerBuiltins(globals *environment.Environment) {
	globals.Define("clock", &procedure.Native{
		Name:  "clock",
		Arity: 0,
		Fn: func(args []value.Value) value.Value {
			ms := float64(time.Now().UnixNano()) / 1e6
			return value.Number{F: ms}
		},
	})
}
