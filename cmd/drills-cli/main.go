package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sagarc03/drills/clientcli"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile    string
	endpoint   string
	profile    string
	jsonOutput bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:     "drills-cli",
	Version: version,
	Short:   "Client for the drills server",
	Long: `drills-cli - Client for the drills demo server

Commands map onto server endpoints:
  - greet:  /greetings
  - sum:    /sum
  - cipher: /cipher (Caesar shift)
  - lotto:  /lotto
  - echo:   /echo

Connection settings are resolved from the config file profile, then
environment variables (DRILLS_ENDPOINT), then flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.drills/config.yaml, env: DRILLS_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "server URL (default: http://localhost:8000, env: DRILLS_ENDPOINT)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "profile name from config file (env: DRILLS_PROFILE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print only the answer")

	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(cipherCmd)
	rootCmd.AddCommand(lottoCmd)
	rootCmd.AddCommand(echoCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		_ = getFormatter().FormatError(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError is returned when the error was already reported
// and only the exit code is left to set.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// getConfigPath returns the config path from flag, env, or default.
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if p := clientcli.ConfigPathFromEnv(); p != "" {
		return p
	}
	return clientcli.DefaultConfigPath()
}

// buildConfig merges config from profile, env vars, and flags (flags take precedence).
func buildConfig() (*clientcli.Config, error) {
	var configs []*clientcli.Config

	// 1. Load from the selected profile
	profileName := profile
	if profileName == "" {
		profileName = clientcli.ProfileFromEnv()
	}

	explicitFile := cfgFile != "" || clientcli.ConfigPathFromEnv() != ""
	if configPath := getConfigPath(); configPath != "" {
		configFile, err := clientcli.LoadConfigFile(configPath)
		switch {
		case err == nil:
			p, profileErr := configFile.GetProfile(profileName)
			if profileErr != nil && (profileName != "" || !errors.Is(profileErr, clientcli.ErrNoProfiles)) {
				return nil, profileErr
			}
			configs = append(configs, clientcli.ConfigFromProfile(p))
		case explicitFile || profileName != "":
			// Only error if the user asked for a file or profile
			return nil, err
		}
	}

	// 2. Load from environment variables
	configs = append(configs, clientcli.ConfigFromEnv())

	// 3. Load from flags
	configs = append(configs, &clientcli.Config{Endpoint: endpoint})

	return clientcli.MergeConfig(configs...), nil
}

// getFormatter returns the appropriate formatter based on flags.
func getFormatter() clientcli.Formatter {
	return clientcli.NewFormatter(jsonOutput, quiet)
}

// getClient creates and returns a configured client.
func getClient() (*clientcli.Client, error) {
	cfg, err := buildConfig()
	if err != nil {
		return nil, err
	}

	return clientcli.New(cfg)
}

// reportError prints err with the active formatter and maps server
// rejections to exit code 2.
func reportError(err error) error {
	_ = getFormatter().FormatError(os.Stderr, err)
	if errors.Is(err, clientcli.ErrBadRequest) {
		return &exitError{code: 2}
	}
	return &exitError{code: 1}
}
