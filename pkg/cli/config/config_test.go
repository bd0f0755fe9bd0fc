package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/octolens/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	// Verify flag names
	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
}

func TestSentryConfigureWithoutDSN(t *testing.T) {
	sentryConfig := &config.Sentry{}
	gt.NoError(t, sentryConfig.Configure(context.Background()))
}

func TestGitHubFlags(t *testing.T) {
	githubConfig := &config.GitHub{}
	flags := githubConfig.Flags()

	gt.V(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["github-token"])
	gt.True(t, flagNames["github-base-url"])
}

func TestGitHubNewWithDefaults(t *testing.T) {
	githubConfig := &config.GitHub{}
	client := gt.R1(githubConfig.New()).NoError(t)
	gt.True(t, client != nil)
}
