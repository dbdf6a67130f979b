package main

import (
	"log"
	"os"

	"github.com/sanchara/sanchara/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		log.Printf("failed to execute command: %v", err)
		os.Exit(1)
	}
}
