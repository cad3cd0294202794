package main

import "github.com/soli0222/valentine-cli/internal/cli"

func main() {
	cli.Execute()
}
