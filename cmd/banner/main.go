package main

import "github.com/k1LoW/banner/cmd"

func main() {
	cmd.Execute()
}
