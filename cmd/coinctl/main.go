package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/careercoin/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(app.New).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
