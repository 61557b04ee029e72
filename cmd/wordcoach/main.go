package main

import "github.com/mcoot/wordcoach/internal/cli"

func main() {
	cli.Execute()
}
