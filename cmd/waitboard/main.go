package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clearlane/waitboard/backend/internal/config"
	"github.com/clearlane/waitboard/backend/internal/debounce"
	"github.com/clearlane/waitboard/backend/internal/fetch"
	"github.com/clearlane/waitboard/backend/internal/logging"
	"github.com/clearlane/waitboard/backend/internal/query"
	"github.com/clearlane/waitboard/backend/internal/render"
	"github.com/clearlane/waitboard/backend/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	searchQuery string
	categoryKey string
	viewName    string
	htmlOutput  bool
	interactive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waitboard",
		Short: "Fetches the class waitlist snapshot and answers one query",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("feed-url", defaults.GetString("feed.url"), "Snapshot feed URL")
	cmd.PersistentFlags().Int("timeout-ms", defaults.GetInt("fetch.timeout_ms"), "Per-attempt timeout in milliseconds")
	cmd.PersistentFlags().Int("max-attempts", defaults.GetInt("fetch.max_attempts"), "Total fetch attempts before giving up")
	cmd.PersistentFlags().Int("backoff-ms", defaults.GetInt("fetch.backoff_ms"), "Backoff base in milliseconds")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")

	cmd.Flags().StringVar(&searchQuery, "query", "", "Free-text search query")
	cmd.Flags().StringVar(&categoryKey, "category", "", "Category filter key")
	cmd.Flags().StringVar(&viewName, "view", string(query.ViewWaitlist), "View: waitlist or available")
	cmd.Flags().BoolVar(&htmlOutput, "html", false, "Render results as an HTML fragment")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Read queries from stdin against the cached snapshot")

	bindFlag(cmd, "feed.url", "feed-url")
	bindFlag(cmd, "fetch.timeout_ms", "timeout-ms")
	bindFlag(cmd, "fetch.max_attempts", "max-attempts")
	bindFlag(cmd, "fetch.backoff_ms", "backoff-ms")
	bindFlag(cmd, "log.level", "log-level")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func run(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	view := query.View(viewName)
	if view != query.ViewWaitlist && view != query.ViewAvailable {
		return fmt.Errorf("unknown view %q", viewName)
	}

	fetcher, err := fetch.NewFetcher(fetch.Config{
		URL:            appConfig.FeedURL,
		AttemptTimeout: appConfig.AttemptTimeout,
		MaxAttempts:    appConfig.MaxAttempts,
		BackoffBase:    appConfig.BackoffBase,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	document, err := fetcher.Fetch(signalCtx)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) && fetchErr.Timeout() {
			fmt.Fprintln(os.Stderr, "Request timed out; try again in a moment.")
		} else {
			fmt.Fprintln(os.Stderr, "Could not load waitlist data; try again in a moment.")
		}
		return err
	}

	pageSession := session.New()
	pageSession.Replace(document)
	pageSession.SetQuery(searchQuery)
	pageSession.SetCategory(categoryKey)
	pageSession.SetView(view)

	result, err := pageSession.Search()
	if err != nil {
		if errors.Is(err, session.ErrNotLoaded) {
			fmt.Fprintln(os.Stderr, render.NotLoadedMessage())
		}
		return err
	}

	logger.Debug("query answered",
		zap.String("view", string(view)),
		zap.String("category", categoryKey),
		zap.Bool("empty", result.Empty()))

	if err := writeResult(result, pageSession.Params()); err != nil {
		return err
	}
	if interactive {
		return runInteractive(signalCtx, pageSession, appConfig.DebounceDelay)
	}
	return nil
}

func writeResult(result query.Result, params query.Params) error {
	if htmlOutput {
		return render.WriteHTML(os.Stdout, result, params)
	}
	return render.WriteText(os.Stdout, result, params)
}

// runInteractive treats each stdin line as the latest query input,
// debounced the way a UI would coalesce keystrokes, and answers it from
// the cached snapshot without refetching.
func runInteractive(ctx context.Context, pageSession *session.Session, delay time.Duration) error {
	scheduler := debounce.NewScheduler(delay)
	defer scheduler.Stop()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			scheduler.Schedule(func() {
				pageSession.SetQuery(line)
				result, err := pageSession.Search()
				if err != nil {
					fmt.Fprintln(os.Stderr, render.NotLoadedMessage())
					return
				}
				if err := writeResult(result, pageSession.Params()); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			})
		}
	}
}
