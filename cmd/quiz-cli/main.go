package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sandrikkk/quiz/internal/cli"
)

func main() {
	defaultURL := os.Getenv("QUIZ_SERVICE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	serviceURL := flag.String("url", defaultURL, "base URL of a running quiz-service")
	flag.Parse()

	app := cli.NewApp(*serviceURL, nil)
	if err := app.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
