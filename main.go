package main

import "github.com/ericglau/nile/cmd"

func main() {
	cmd.Execute()
}
