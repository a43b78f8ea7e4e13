package main

import "github.com/encodeous/hopsim/cmd"

func main() {
	cmd.Execute()
}
