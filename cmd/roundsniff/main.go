package main

import "github.com/fairwaydata/roundsniff/cmd/roundsniff/cmd"

func main() {
	cmd.Execute()
}
