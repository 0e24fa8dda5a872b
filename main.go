package main

import "github.com/Aashish23092/id-verification/cli"

func main() {
	cli.Execute()
}
