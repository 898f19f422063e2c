package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"
)

func main() {
	cfg, err := LoadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cfg = DefaultConfig()
	}

	log := SetupLogger(cfg.LogLevel, os.Stderr)
	console := NewConsole(os.Stdin, os.Stdout)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := NewApp(cfg, console, rng, log)
	app.Run()
}
