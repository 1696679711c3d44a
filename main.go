package main

import "github.com/curaious/tasker/cmd"

func main() {
	cmd.Execute()
}
