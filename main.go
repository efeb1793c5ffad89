package main

import "github.com/mdrakibulhaquesardar/flx-cli/cmd"

func main() {
	cmd.Execute()
}
