package main

import (
	"os"

	"github.com/chinmay1088/raydium-go/cmd"
)

func main() {
	os.Exit(cmd.Run())
}
