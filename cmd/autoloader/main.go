package main

import "autoloader/internal/cli"

func main() {
	cli.Execute()
}
