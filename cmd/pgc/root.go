package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/syssam/pgc/internal/cli"
	"github.com/syssam/pgc/internal/logger"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool

	// fsys is the filesystem requests are read from and files written to.
	fsys afero.Fs = afero.NewOsFs()
)

var rootCmd = &cobra.Command{
	Use:   "pgc",
	Short: "Typed database clients from SQL",
	Long: `pgc - typed database clients from SQL

pgc reads an analyzed SQL catalog and its queries, and generates models and
data-access methods for Python (asyncpg, psycopg) and TypeScript (postgres).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logger.Level(verbose, quiet)
		log := logger.New(cmd.ErrOrStderr(), level).With("run", uuid.NewString())
		logger.SetGlobal(log)

		// Skip config loading for commands that do not read it
		switch cmd.Name() {
		case "help", "completion", "version", "targets":
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}
		if configPath != "" {
			log.Debug("loaded configuration", "path", configPath)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Command group IDs
const (
	groupGenerate = "generate"
	groupUtility  = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover pgc.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupGenerate, Title: "Generate:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	generateCmd.GroupID = groupGenerate
	watchCmd.GroupID = groupGenerate
	pluginCmd.GroupID = groupGenerate
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(pluginCmd)

	targetsCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	return cli.ExitCode(os.Stderr, err)
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
