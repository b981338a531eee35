package cmds

// GlobalExecutor collects the flags and commands registered by package-level Var, Switch and Define calls.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) {
	GlobalExecutor.MustExecute(args)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}
