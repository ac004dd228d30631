package main

import (
	"hanzi-namer/cmd"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cmd.Execute()
}
