package main

import "host-insight/internal/cli"

func main() {
	cli.Execute()
}
