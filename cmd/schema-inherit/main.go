package main

import "schema-inherit/internal/cli"

func main() {
	cli.Execute()
}
