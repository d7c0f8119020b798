package main

import "image-verifier/cmd"

func main() {
	cmd.Execute()
}
