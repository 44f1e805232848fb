// Package cli provides the cobra command surface for ScholarScout.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/scoutlab/scholarscout-cli/internal/config"
	"github.com/scoutlab/scholarscout-cli/internal/connectors/codehost"
	"github.com/scoutlab/scholarscout-cli/internal/connectors/scholar"
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

const version = "0.1.0"

var (
	verbose    bool
	configPath string

	scholarService    *services.ScholarService
	recruitingService *services.RecruitingService
)

var rootCmd = &cobra.Command{
	Use:   "scholarscout",
	Short: "Recruiting intelligence from Semantic Scholar and GitHub",
	Long: `ScholarScout fuses Semantic Scholar academic-graph data with GitHub
developer activity into recruiting-oriented rankings and scores, served
to AI assistants over the Model Context Protocol.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.scholarscout/config.toml)")
}

// initServices builds the connector and service graph from the resolved
// configuration. It runs once per invocation, before any command.
func initServices() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	graph := scholar.NewClient(scholar.Config{
		BaseURL: cfg.ScholarBaseURL,
		APIKey:  cfg.ScholarAPIKey,
	})
	code := codehost.NewClient(codehost.Config{Token: cfg.GithubToken})

	scholarService = services.NewScholarService(graph)
	recruitingService = services.NewRecruitingService(graph, code)

	if cfg.ScholarAPIKey == "" {
		logger.Info("no Semantic Scholar API key configured, using the slower pacing tier")
	}
	if cfg.GithubToken == "" {
		logger.Info("no GitHub token configured, code-host tools are disabled")
	}
	return nil
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
