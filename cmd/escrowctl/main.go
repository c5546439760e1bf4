package main

import (
	"os"

	"github.com/rampp2p/escrow/cmd/escrowctl/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
