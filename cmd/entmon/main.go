package main

import "github.com/vios-tools/entmon/pkg/commands"

func main() {
	commands.Execute()
}
