package main

import "github.com/jjunho/lunar-year/internal/cli"

func main() {
	cli.Execute()
}
