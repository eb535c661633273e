package main

import "github.com/mouse-blink/remedy/cmd"

func main() {
	cmd.Execute()
}
