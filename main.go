package main

import "github.com/Yates-Labs/lens/cmd"

func main() {
	cmd.Execute()
}
