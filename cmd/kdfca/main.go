package main

import "github.com/kdfca/academy/internal/cli"

func main() {
	cli.Execute()
}
