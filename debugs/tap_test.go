package debugs

import (
	"os"
	"testing"

	"github.com/reusee/babel/babelconfigs"
	"github.com/reusee/babel/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

func TestTap(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("interactive stdin")
	}
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(babelconfigs.NewLoader(nil)),
	).Call(func(
		tap Tap,
		globals Globals,
	) {
		// the REPL returns at end of input
		tap(t.Context(), "test", globals(t.Context()))
	})
}
