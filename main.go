package main

import "github.com/softmesh/hemesh/cmd"

func main() {
	cmd.Execute()
}
