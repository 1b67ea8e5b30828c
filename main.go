package main

import "github.com/forward-progress/ffpack/cmd"

func main() {
	cmd.Execute()
}
