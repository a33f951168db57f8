package main

import "complexity-analyzer/src/handler/cli"

func main() {
	cli.Run()
}
