package main

import (
	"log"
	"os"

	"filler-robot/internal/config"
	"filler-robot/internal/robot"
)

func main() {
	// stdout is the referee channel; keep logs on stderr.
	log.SetOutput(os.Stderr)
	log.SetPrefix("filler-robot ")

	cfg := config.Get()
	if err := robot.New(cfg).Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
