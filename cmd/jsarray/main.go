package main

import "github.com/dop251/jsarray/internal/cmd"

func main() {
	cmd.Execute()
}
