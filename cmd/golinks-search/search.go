package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/golinks-search/internal/api"
	"github.com/pdiddy/golinks-search/internal/cache"
	"github.com/pdiddy/golinks-search/internal/httputil"
	"github.com/pdiddy/golinks-search/internal/secrets"
	"github.com/pdiddy/golinks-search/internal/update"
	"github.com/pdiddy/golinks-search/internal/workflow"
	"github.com/pdiddy/golinks-search/pkg/types"
)

func init() {
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	rootCmd.Flags().Bool("no-update-check", false, "skip the release update check")
	rootCmd.Flags().String("secrets-dir", ".secrets", "directory holding optional api-key and client-id files")
}

// loadConfig resolves defaults, config file values, and environment
// overrides (api_url, max_results, cache_max_age) into one Config.
func loadConfig() (types.Config, error) {
	cacheDir := viper.GetString("cache_dir")
	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return types.Config{}, fmt.Errorf("resolving cache directory: %w", err)
		}
		cacheDir = filepath.Join(base, "golinks-search")
	}

	return types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				UserAgent: fmt.Sprintf("golinks-search/%s (%s)", version, helpURL),
			},
			APIURL:     viper.GetString("api_url"),
			MaxResults: viper.GetInt("max_results"),
		},
		Cache: types.CacheConfig{
			Dir:    cacheDir,
			MaxAge: time.Duration(viper.GetInt("cache_max_age")) * time.Second,
		},
		Update: types.UpdateConfig{
			GitHubSlug: githubSlug,
			Disabled:   viper.GetBool("no_update_check"),
		},
	}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	client := httputil.NewClient(timeout)

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	creds, err := secrets.Load(secretsDir)
	if err != nil {
		return err
	}

	store, err := cache.NewStore(cfg.Cache.Dir)
	if err != nil {
		return err
	}

	var updateResult *update.Result
	if noCheck, _ := cmd.Flags().GetBool("no-update-check"); !noCheck && !cfg.Update.Disabled {
		updateResult = update.Check(cmd.Context(), client, cfg.Update.GitHubSlug, version)
	}

	w := &workflow.Workflow{
		Store: store,
		Searcher: &api.Client{
			HTTPClient:  client,
			BaseURL:     cfg.Search.APIURL,
			UserAgent:   cfg.Search.UserAgent,
			Credentials: creds,
		},
		MaxResults:  cfg.Search.MaxResults,
		CacheMaxAge: cfg.Cache.MaxAge,
		Update:      updateResult,
		Log:         os.Stderr,
	}
	return w.Run(cmd.Context(), query, os.Stdout)
}
