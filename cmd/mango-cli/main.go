package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
