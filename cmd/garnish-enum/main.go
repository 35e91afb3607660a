package main

import "github.com/zoobzio/garnish/cmd/garnish-enum/cmd"

func main() {
	cmd.Execute()
}
