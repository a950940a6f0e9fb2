package main

import (
	"github.com/mj1618/persway/cmd"

	_ "github.com/mj1618/persway/internal/sway"
)

func main() {
	cmd.Execute()
}
