package main

import "github.com/ggVGc/lisix/cmd"

func main() {
	cmd.Execute()
}
