package main

import "github.com/lexcodex/spirvconf/app/cmd"

func main() {
	cmd.Execute()
}
