package cmds

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": Func(func() {}),
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": Func(func() {}),
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestDurationArgument(t *testing.T) {
	executor := NewExecutor()
	var d time.Duration
	var seed uint64
	executor.Define("-timeout", Func(func(v time.Duration) {
		d = v
	}))
	executor.Define("-seed", Func(func(v uint64) {
		seed = v
	}))
	if err := executor.Execute([]string{
		"-timeout", "1500ms",
		"-seed", "7",
	}); err != nil {
		t.Fatal(err)
	}
	if d != 1500*time.Millisecond {
		t.Fatalf("got %v", d)
	}
	if seed != 7 {
		t.Fatalf("got %v", seed)
	}

	err := executor.Execute([]string{"-timeout", "soon"})
	if !errors.Is(err, ErrBadArgument) || !strings.Contains(err.Error(), "-timeout: argument 1: bad argument: soon is not a duration") {
		t.Fatalf("got %v", err)
	}
}

func TestNilSubCommand(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	Sub(map[string]*Command{
		"a": nil,
	})
}

func TestMissingArgument(t *testing.T) {
	executor := NewExecutor()
	executor.Define("page", Func(func(string) {}))
	err := executor.Execute([]string{"page"})
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"nope"})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	boom := errors.New("boom")
	var calls int
	executor.Define("ok", Func(func() error {
		calls++
		return nil
	}))
	executor.Define("fail", Func(func() error {
		return boom
	}))
	if err := executor.Execute([]string{"ok", "ok"}); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("got %v", calls)
	}
	err := executor.Execute([]string{"fail", "ok"})
	if !errors.Is(err, boom) || err.Error() != "fail: boom" {
		t.Fatalf("got %v", err)
	}
	if calls != 2 {
		t.Fatalf("got %v", calls)
	}
}

type level string

func (l *level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low", "high":
		*l = level(text)
		return nil
	}
	return fmt.Errorf("unknown level %q", text)
}

func TestTextUnmarshalerArgument(t *testing.T) {
	executor := NewExecutor()
	var got level
	executor.Define("-level", Func(func(l level) {
		got = l
	}))
	if err := executor.Execute([]string{"-level", "high"}); err != nil {
		t.Fatal(err)
	}
	if got != "high" {
		t.Fatalf("got %v", got)
	}
	err := executor.Execute([]string{"-level", "mid"})
	if !errors.Is(err, ErrBadArgument) || !strings.Contains(err.Error(), `unknown level "mid"`) {
		t.Fatalf("got %v", err)
	}
}
