package cmds

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(bytes.Buffer)
	executor.SetOutput(buf)
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(n int, s *string) {}).Desc("QUX"),
		}).Desc("BAZ"),
	}).Desc("FOO"))
	executor.PrintUsage()

	out := buf.String()
	for _, expected := range []string{
		"foo\tFOO",
		"  bar\tBAR",
		"  baz\tBAZ",
		"    qux <int> [string]\tQUX",
		"-h (help, -help, --help)",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in\n%s", expected, out)
		}
	}
}

func TestArgsUsage(t *testing.T) {
	if got := Func(func(time.Duration, *int) {}).ArgsUsage(); got != "<time.Duration> [int]" {
		t.Fatalf("got %q", got)
	}
	if got := Sub(map[string]*Command{}).ArgsUsage(); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestFuncVariadic(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	Func(func(...string) {})
}
