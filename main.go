package main

import "github.com/olivierh59500/quantum-field-go/cmd"

func main() {
	// Hand off to the cobra command tree
	cmd.Execute()
}
