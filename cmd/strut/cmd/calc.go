package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-strut/strut/cmd/strut/internal/treefile"
	"github.com/go-strut/strut/pkg/config"
	"github.com/go-strut/strut/pkg/engine"
)

var (
	calcWidth     float64
	calcHeight    float64
	calcScrollbar float64
	calcConfigDir string
)

var calcCmd = &cobra.Command{
	Use:   "calc <tree.yaml>",
	Short: "Calculate layout for a tree description",
	Long: `Calc loads a YAML tree description, seeds the root with the viewport
size, runs the layout engine and prints the calculated geometry as an
indented outline.

Engine settings are read from strut.yaml in the config directory when
present; flags override the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().Float64VarP(&calcWidth, "width", "w", 800, "viewport width")
	calcCmd.Flags().Float64VarP(&calcHeight, "height", "H", 600, "viewport height")
	calcCmd.Flags().Float64Var(&calcScrollbar, "scrollbar", 0, "scrollbar thickness (0 uses the configured value)")
	calcCmd.Flags().StringVar(&calcConfigDir, "config-dir", ".", "directory searched for strut.yaml")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOptional(calcConfigDir)
	if err != nil {
		return err
	}

	opts := cfg.EngineOptions()
	if calcScrollbar > 0 {
		opts.ScrollbarSize = calcScrollbar
	}

	root, err := treefile.LoadFile(args[0])
	if err != nil {
		return err
	}
	root.Calc.SetWidth(calcWidth)
	root.Calc.SetHeight(calcHeight)

	eng := engine.New(opts)
	if err := eng.Calculate(root); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), engine.Dump(root))
	return nil
}
