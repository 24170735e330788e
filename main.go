/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	releaseVersion = "0.1.0"
)

func main() {
	log.SetFlags(0)

	// Load .env if present, before viper binds the environment.
	_ = godotenv.Load(".env")

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
