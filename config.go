package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	bind           string
	port           int
	prefix         string
	profile        bool
	metrics        bool
	sessionTimeout time.Duration
	tlsCert        string
	tlsKey         string
	verbose        bool
	version        bool

	// dataset source (exactly one of csv / sheet / postgres)
	goalsCSV    string
	groundsCSV  string
	goalsURL    string
	groundsURL  string
	databaseURL string
	sqliteCache string
}

func (c *Config) validate() error {
	if (c.tlsCert == "") != (c.tlsKey == "") {
		return errors.New("both --tls-cert and --tls-key must be provided together")
	}
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if (c.goalsCSV == "") != (c.groundsCSV == "") {
		return errors.New("both --goals-csv and --grounds-csv must be provided together")
	}
	if (c.goalsURL == "") != (c.groundsURL == "") {
		return errors.New("both --goals-url and --grounds-url must be provided together")
	}

	sources := 0
	for _, set := range []bool{c.goalsCSV != "", c.goalsURL != "", c.databaseURL != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return errors.New("exactly one dataset source must be configured: --goals-csv/--grounds-csv, --goals-url/--grounds-url, or --database-url")
	}

	if c.sqliteCache != "" && c.goalsURL == "" {
		return errors.New("--sqlite-cache only applies to the --goals-url/--grounds-url source")
	}

	return nil
}

func (c *Config) scheme() string {
	if c.tlsCert != "" && c.tlsKey != "" {
		return "https"
	}
	return "http"
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HUNTINGGROUNDS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "huntinggrounds",
		Short:         "A two-player Premier League away-goal trivia game, served as a single webapp.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return ServePage(cmd.Context(), cfg, args)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: HUNTINGGROUNDS_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: HUNTINGGROUNDS_PORT)")
	fs.StringVar(&cfg.prefix, "prefix", "", "path to prepend to all URLs, for use behind reverse proxy (env: HUNTINGGROUNDS_PREFIX)")
	fs.BoolVar(&cfg.profile, "profile", false, "register net/http/pprof handlers (env: HUNTINGGROUNDS_PROFILE)")
	fs.BoolVar(&cfg.metrics, "metrics", false, "expose Prometheus metrics on /metrics (env: HUNTINGGROUNDS_METRICS)")
	fs.DurationVar(&cfg.sessionTimeout, "session-timeout", 60*time.Minute, "time before idle game sessions are ended (env: HUNTINGGROUNDS_SESSION_TIMEOUT)")
	fs.StringVar(&cfg.tlsCert, "tls-cert", "", "path to tls certificate (env: HUNTINGGROUNDS_TLS_CERT)")
	fs.StringVar(&cfg.tlsKey, "tls-key", "", "path to tls keyfile (env: HUNTINGGROUNDS_TLS_KEY)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: HUNTINGGROUNDS_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: HUNTINGGROUNDS_VERSION)")

	fs.StringVar(&cfg.goalsCSV, "goals-csv", "", "path to away goals csv (env: HUNTINGGROUNDS_GOALS_CSV)")
	fs.StringVar(&cfg.groundsCSV, "grounds-csv", "", "path to hunting grounds csv (env: HUNTINGGROUNDS_GROUNDS_CSV)")
	fs.StringVar(&cfg.goalsURL, "goals-url", "", "csv export url for away goals (env: HUNTINGGROUNDS_GOALS_URL)")
	fs.StringVar(&cfg.groundsURL, "grounds-url", "", "csv export url for hunting grounds (env: HUNTINGGROUNDS_GROUNDS_URL)")
	fs.StringVar(&cfg.databaseURL, "database-url", "", "postgres connection string for reference data (env: HUNTINGGROUNDS_DATABASE_URL)")
	fs.StringVar(&cfg.sqliteCache, "sqlite-cache", "", "sqlite file used to cache the fetched spreadsheet (env: HUNTINGGROUNDS_SQLITE_CACHE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("huntinggrounds v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
