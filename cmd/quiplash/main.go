package main

import "github.com/mcoot/quiplash-go/internal/cli"

func main() {
	cli.Execute()
}
