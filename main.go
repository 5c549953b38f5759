package main

import (
	"github.com/KaramelBytes/salesmax-cli/cmd"
)

func main() {
	cmd.Execute()
}
