package main

import (
	"context"
	"os"

	"github.com/ONSdigital/log.go/v2/log"

	"github.com/stac-tools/stac-fetch/cmd"
)

func main() {
	log.Namespace = "stac-fetch"

	if err := cmd.Execute(); err != nil {
		log.Error(context.Background(), "command failed", err)
		os.Exit(1)
	}
}
