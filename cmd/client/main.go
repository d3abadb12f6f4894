package main

import "appointment-system/internal/client/cli"

func main() {
	cli.Execute()
}
