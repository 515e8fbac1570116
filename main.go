// main.go
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	rootCommand := newRootCommand(viper.New())
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
