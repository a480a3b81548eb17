package main

import "github.com/emrgen/portfolio/cmd"

func main() {
	cmd.Execute()
}
