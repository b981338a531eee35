package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		t *testing.T,
		mode Mode,
		seed DefaultSeed,
	) {
		if mode != ModeDevelopment {
			t.Fatal()
		}
		if seed == 0 {
			t.Fatal("test mode should pin the seed")
		}
	})
}
