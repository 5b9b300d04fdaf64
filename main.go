package main

import "github.com/matthunz/staff/cmd"

func main() {
	cmd.Execute()
}
