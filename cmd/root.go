package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/infinitelife/pulse/internal/auth"
	"github.com/infinitelife/pulse/internal/catalog"
	"github.com/infinitelife/pulse/internal/engine"
	"github.com/infinitelife/pulse/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Adaptive self-discovery questionnaire",
	Long: "Pulse — a terminal questionnaire that scores your answers across the\n" +
		"four pillars of career, finances, health and connections, and turns\n" +
		"them into an AI self-discovery summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PULSE_DB env var)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token identifying the user (overrides PULSE_TOKEN env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog artifact (defaults to the built-in catalog)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PULSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveSubject maps the --token flag (or PULSE_TOKEN) to a subject.
// Missing secret, missing token or a failed verification all fall back
// to an anonymous, non-persisted session.
func resolveSubject(cmd *cobra.Command) auth.Subject {
	token, _ := cmd.Flags().GetString("token")
	if token == "" {
		token = os.Getenv("PULSE_TOKEN")
	}
	if token == "" {
		return auth.Subject{}
	}

	cfg, err := auth.LoadConfigFromEnv()
	if err != nil || cfg.Secret == "" {
		fmt.Fprintln(os.Stderr, "PULSE_JWT_SECRET not set; continuing as guest.")
		return auth.Subject{}
	}
	verifier, err := auth.NewVerifier(cfg.Secret)
	if err != nil {
		return auth.Subject{}
	}
	sub := verifier.Resolve(token)
	if sub.Anonymous() {
		fmt.Fprintln(os.Stderr, "Token could not be verified; continuing as guest.")
	}
	return sub
}

// loadCatalog loads the artifact named by --catalog, or the built-in.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Builtin(), nil
}

// buildEngine wires the store-backed engine for a command invocation.
// The caller owns closing the returned store.
func buildEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	cfg, err := engine.ConfigFromEnv()
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	return engine.New(cat, st.StateRepo(), st.EventRepo(), cfg), st, nil
}
