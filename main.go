package main

import "github.com/clems4ever/htmltree/cmd"

func main() {
	cmd.Execute()
}
