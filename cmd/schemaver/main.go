package main

import "schemaver/internal/cli"

func main() {
	cli.Execute()
}
