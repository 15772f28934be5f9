package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tessera/bitmap"
	"github.com/katalvlaran/tessera/internal/config"
	"github.com/katalvlaran/tessera/mosaic"
	"github.com/katalvlaran/tessera/placement"
	"github.com/katalvlaran/tessera/tileset"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	// global flags
	cfgFile string
	verbose bool
	mark    string
	blank   string

	cfg *config.Config
	cs  bitmap.Charset
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "tessera",
		Short: "Reassemble scrambled square tiles and search the picture for markers",
		Long: `Tessera reads a set of square tiles that were cut from one picture, then
shuffled, rotated and mirrored. It finds which tiles border each other,
places them back into a square grid, strips their borders and stitches the
picture together. The picture can then be searched for a marker pattern.

Examples:
  tessera corners tiles.txt                       # Corner tile IDs and their product
  tessera assemble --layout tiles.txt             # Solved layout and picture
  tessera roughness tiles.txt                     # Marks left after removing sea monsters
  tessera generate --side 4 --plant 3 > tiles.txt # Synthetic puzzle`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&a.mark, "mark", "", "character for marked cells (overrides config)")
	rootCmd.PersistentFlags().StringVar(&a.blank, "blank", "", "character for blank cells (overrides config)")

	rootCmd.AddCommand(
		newCornersCmd(a),
		newAssembleCmd(a),
		newRoughnessCmd(a),
		newGenerateCmd(a),
	)

	return rootCmd
}

// Execute runs the root command. An interrupt cancels a running search.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration, applies flag overrides and configures
// logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.cfgFile != "" {
		cfg, err := config.LoadFile(a.cfgFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("mark") {
		a.cfg.Symbols.Mark = a.mark
	}
	if cmd.Flags().Changed("blank") {
		a.cfg.Symbols.Blank = a.blank
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	cs, err := a.cfg.Charset()
	if err != nil {
		return err
	}
	a.cs = cs

	return a.setupLogging(cmd.ErrOrStderr())
}

func (a *app) setupLogging(w io.Writer) error {
	level, err := logrus.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)
	a.log.SetOutput(w)
	if a.cfg.Log.Format == config.FormatJSON {
		a.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return nil
}

func (a *app) parser() (*tileset.Parser, error) {
	p, err := tileset.NewParser(a.cs)
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	return p, nil
}

// loadMosaic parses the tile file at path and builds its mosaic. The
// placement search stops when ctx is done.
func (a *app) loadMosaic(ctx context.Context, path string) (*mosaic.Mosaic, error) {
	p, err := a.parser()
	if err != nil {
		return nil, err
	}
	tiles, err := p.ParseTilesFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	a.log.WithFields(logrus.Fields{"file": path, "tiles": len(tiles)}).Info("tiles loaded")

	return mosaic.New(tiles, mosaic.WithLogger(a.log), mosaic.WithPlacementOptions(placement.WithContext(ctx)))
}
