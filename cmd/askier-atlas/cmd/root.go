package cmd

import "os"
import "fmt"
import "unicode/utf8"

import "github.com/spf13/cobra"
import "github.com/sirupsen/logrus"

import "github.com/askier/atlas"
import "github.com/askier/atlas/internal/config"

// State shared by all commands.
type options struct {
	atlasPath string
	order string
	verbose bool
	config *config.Config
}

// Creates the askier-atlas command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use: "askier-atlas",
		Short: "Inspect and generate askier glyph atlases",
		Long: "Loads askier glyph atlases (JSON pixel maps of the printable ASCII\n" +
			"characters) to display, dump or validate them, and generates new\n" +
			"atlases from fonts.",
		SilenceUsage: true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.atlasPath, "atlas", "", "atlas JSON file (default $" + config.EnvAtlas + " or the askier data dir)")
	flags.StringVar(&opts.order, "order", "", "override the atlas pixmap order (codepoint or lut)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newDumpCmd(opts))
	root.AddCommand(newInfoCmd(opts))
	root.AddCommand(newSheetCmd(opts))
	root.AddCommand(newCalibrateCmd(opts))
	return root
}

// Runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (self *options) setup(cmd *cobra.Command) error {
	dir, err := os.Getwd()
	if err != nil { return err }
	self.config, err = config.Load(dir)
	if err != nil { return err }

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{ DisableTimestamp: true })
	logrus.SetLevel(self.config.LogLevel)
	if self.verbose { logrus.SetLevel(logrus.DebugLevel) }

	switch self.order {
	case "", atlas.OrderCodepoint, atlas.OrderLUT:
		return nil
	default:
		return fmt.Errorf("invalid --order %q (expected %s or %s)", self.order, atlas.OrderCodepoint, atlas.OrderLUT)
	}
}

// Returns the atlas file path: --atlas, or the configured one.
func (self *options) path() string {
	if self.atlasPath != "" { return self.atlasPath }
	return self.config.AtlasPath
}

func (self *options) loadAtlas() (*atlas.Atlas, error) {
	result, err := atlas.Load(self.path())
	if err != nil { return nil, err }
	if self.order != "" { result.Order = self.order }
	return result, nil
}

// Returns a mapper for the atlas LUT, or nil if the atlas has none.
func optionalMapper(source *atlas.Atlas) *atlas.Mapper {
	mapper, err := atlas.NewMapper(source)
	if err != nil { return nil }
	return mapper
}

// Returns the single character in args, or 'g' if args are empty.
func parseChar(args []string) (rune, error) {
	if len(args) == 0 { return 'g', nil }
	if utf8.RuneCountInString(args[0]) != 1 {
		return 0, fmt.Errorf("expected a single character, got %q", args[0])
	}
	r, _ := utf8.DecodeRuneInString(args[0])
	return r, nil
}
