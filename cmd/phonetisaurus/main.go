package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/rhasspy/phonetisaurus-go/internal/cli"
)

func main() {
	cli.Execute()
}
