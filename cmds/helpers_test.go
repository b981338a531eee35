package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	walls := Var[int]("TestVar-walls", "wall count")
	alphabet := Var[string]("TestVar-alphabet")
	GlobalExecutor.MustExecute([]string{
		"TestVar-walls", "42",
		"TestVar-alphabet", "abc",
	})
	if *walls != 42 {
		t.Fatalf("got %v", *walls)
	}
	if *alphabet != "abc" {
		t.Fatalf("got %v", *alphabet)
	}

	GlobalExecutor.MustExecute([]string{
		"TestVar-walls.",
	})
	if *walls != 0 {
		t.Fatalf("got %v", *walls)
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	GlobalExecutor.MustExecute([]string{
		"TestSwitch",
	})
	if *foo != true {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{
		"!TestSwitch",
	})
	if *foo != false {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "1-1-1-1",
		"TestCollect", "2-2-2-2",
	})
	if str := fmt.Sprintf("%v", *list); str != "[1-1-1-1 2-2-2-2]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Policy string
	v := Var[Policy]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "embed",
	})
	if *v != "embed" {
		t.Fatalf("got %v", *v)
	}
}
