package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ghresume/pkg/cli"

	_ "go.uber.org/automaxprocs"
)

func main() {
	_ = godotenv.Load()

	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
