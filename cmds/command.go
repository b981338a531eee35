package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// ArgsUsage renders the arguments of c, "<T>" for required and "[T]" for optional ones.
func (c *Command) ArgsUsage() string {
	if !c.Func.IsValid() {
		return ""
	}
	t := c.Func.Type()
	parts := make([]string, 0, t.NumIn())
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			parts = append(parts, "["+in.Elem().String()+"]")
			continue
		}
		parts = append(parts, "<"+in.String()+">")
	}
	return strings.Join(parts, " ")
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}
	if fnType.IsVariadic() {
		panic(fmt.Errorf("variadic arguments not supported: %v", fnType))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	for name, sub := range subs {
		if sub == nil {
			panic(fmt.Errorf("nil sub command: %s", name))
		}
	}
	return &Command{
		Subs: subs,
	}
}
