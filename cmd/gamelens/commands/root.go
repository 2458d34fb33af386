package commands

import (
	"gamelens/internal/config"
	"gamelens/internal/gamesdb"
	"gamelens/internal/logging"
	"gamelens/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	dbClient gamesdb.Client
)

var rootCmd = &cobra.Command{
	Use:   "gamelens",
	Short: "GameLens is an OLAP MCP server for the games database",
	Long: `An MCP server exposing the pre-defined analytical queries of the games
database (release dates, price ranges, genres/languages, developers) as tools
that return formatted tables and bar-chart projections.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		dbClient = gamesdb.NewClient(cfg.DB)

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("GameLens starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(dbClient)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("Server loop terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
