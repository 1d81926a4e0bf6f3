// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the similarity-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/similarity-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the similarity-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "similarity-engine",
	Short: "Estimate how much a document overlaps with published work",
	Long: `similarity-engine compares a submitted PDF against candidate references
fetched from bibliographic search APIs (CrossRef, OpenAlex, Semantic Scholar),
scores each candidate for textual similarity, and issues a report with a short
verification code that can later be checked for authenticity.

The check subcommand runs the full pipeline on a document; verify looks up a
previously issued code.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./similarity-engine.yaml or ~/.config/similarity-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("similarity-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "similarity-engine"))
		}
	}

	viper.SetEnvPrefix("SIMILARITY_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
