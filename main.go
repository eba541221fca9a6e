package main

import "github.com/mmuldo/paleta/cmd"

func main() {
	cmd.Execute()
}
