package main

import (
	"log"

	"github.com/tutils/lcgrand/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
