package main

import "dcat-packages/internal/cli"

func main() {
	cli.Execute()
}
