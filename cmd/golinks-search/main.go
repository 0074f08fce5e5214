// Package main is the entry point for the golinks-search CLI, a launcher
// Script Filter that searches golinks and prints result feedback as JSON.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/golinks-search/internal/api"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	// helpURL is included in the User-Agent so API operators can find us.
	helpURL = "https://github.com/pdiddy/golinks-search"

	// githubSlug is the repository checked for newer releases.
	githubSlug = "pdiddy/golinks-search"
)

// rootCmd runs the search itself: one positional query argument, results
// on stdout as Script Filter JSON. Diagnostics go to stderr.
var rootCmd = &cobra.Command{
	Use:   "golinks-search [query]",
	Short: "Search golinks from a launcher",
	Long: `golinks-search queries the golinks search API for short links matching a
query, caches the response briefly on disk, and prints launcher Script
Filter JSON: one row per golink, ordered by popularity.

An omitted or empty query is still sent to the API and renders whatever
it returns.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./golinks-search.yaml or ~/.config/golinks-search/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("golinks-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "golinks-search"))
		}
	}

	viper.SetDefault("api_url", api.DefaultBaseURL)
	viper.SetDefault("max_results", 50)
	viper.SetDefault("cache_max_age", 20)

	// The launcher exports workflow variables under their bare
	// lowercase names, so bind both spellings explicitly.
	viper.BindEnv("api_url", "api_url", "API_URL")
	viper.BindEnv("max_results", "max_results", "MAX_RESULTS")
	viper.BindEnv("cache_max_age", "cache_max_age", "CACHE_MAX_AGE")
	viper.BindEnv("cache_dir", "cache_dir", "CACHE_DIR")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
