// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tmdlab/tmdlattice/params"
	"github.com/tmdlab/tmdlattice/tmd"
)

// presets maps CLI names onto the preset constructors.
var presets = map[string]func(...tmd.Option) (*tmd.Model, error){
	"nn2-me":          tmd.TmdNN2Me,
	"nn12-mexe":       tmd.TmdNN12MeXe,
	"nn12-meoxeo":     tmd.TmdNN12MeoXeo,
	"nn123-meoxeo":    tmd.TmdNN123MeoXeo,
	"nn125-meoxeo":    tmd.TmdNN125MeoXeo,
	"nn256-me":        tmd.TmdNN256Me,
	"nn256-meo":       tmd.TmdNN256Meo,
	"nn123456-meoxeo": tmd.TmdNN123456MeoXeo,
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func newRootCmd() *cobra.Command {
	var verbose bool
	rootCmd := &cobra.Command{
		Use:   "tmdlattice",
		Short: "Tight-binding lattice presets for transition-metal dichalcogenides",
		Long: `tmdlattice inspects the embedded parameter registry and assembles
tight-binding lattices from the published TMD model presets.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newTablesCmd(), newParamsCmd(), newBuildCmd())
	return rootCmd
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List parameter tables and their materials",
		Long:  `List every embedded parameter table, its kind, and the materials it covers.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range params.Tables() {
				table, err := params.LookupTable(name)
				if err != nil {
					return err
				}
				fmt.Printf("%-16s %-10s %s\n", table.Name(), table.Kind(), strings.Join(table.Materials(), " "))
			}
			return nil
		},
	}
}

func newParamsCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "params <table> <material>",
		Short: "Dump one parameter set as YAML",
		Long: `Dump the values of one parameter set to stdout as YAML.
Derived Slater-Koster values are included.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			table, err := params.LookupTable(args[0])
			if err != nil {
				return err
			}
			var set params.Set
			if variant == "" {
				set, err = table.Get(args[1])
			} else {
				set, err = table.GetVariant(args[1], variant)
			}
			if err != nil {
				return err
			}
			log.Debug("resolved parameter set", "table", args[0], "material", set.Material())
			out, err := yaml.Marshal(set.Values())
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "", "parameter-set variant (e.g. fitted)")
	return cmd
}

func newBuildCmd() *cobra.Command {
	var (
		tableName     string
		material      string
		soc           bool
		socFlip       bool
		socPolarized  bool
		noSzPart      bool
		socSz         float64
		lat4          bool
		singleOrbital bool
	)
	cmd := &cobra.Command{
		Use:   "build <preset>",
		Short: "Assemble a preset lattice and print its layout",
		Long: `Assemble a preset lattice and print a summary: model name, material,
band counts, sublattices with onsite dimensions, and the hopping families.
Presets: ` + strings.Join(presetNames(), ", ") + `.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctor, ok := presets[args[0]]
			if !ok {
				return fmt.Errorf("unknown preset %q (known: %s)", args[0], strings.Join(presetNames(), ", "))
			}
			opts, err := buildOptions(tableName, material, soc, socFlip, socPolarized, noSzPart, socSz, lat4, singleOrbital)
			if err != nil {
				return err
			}
			m, err := ctor(opts...)
			if err != nil {
				return err
			}
			log.Debug("assembling lattice", "preset", args[0], "material", m.Material())
			l, err := m.Lattice()
			if err != nil {
				return err
			}
			fmt.Printf("%s  material=%s  bands=%d  valence=%d\n", m.Name(), m.Material(), m.NBands(), m.NValenceBand())
			fmt.Printf("a1=%v a2=%v\n", l.A1(), l.A2())
			for _, s := range l.Sublattices() {
				fmt.Printf("site %-12s pos=(%.4f, %.4f) dim=%d\n", s.Name, s.Position[0], s.Position[1], s.Onsite.Rows())
			}
			fmt.Printf("hoppings=%d\n", l.NHoppings())
			for _, h := range l.Hoppings() {
				fmt.Printf("hop  %-24s cell=%v %s->%s\n", h.Energy, h.Cell, h.From, h.To)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tableName, "table", "", "parameter table (default: the preset's published table)")
	cmd.Flags().StringVar(&material, "material", "", "material formula, e.g. WSe2 (requires --table)")
	cmd.Flags().BoolVar(&soc, "soc", false, "enable spin-orbit coupling")
	cmd.Flags().BoolVar(&socFlip, "soc-flip", false, "include the even/odd spin-flip blocks")
	cmd.Flags().BoolVar(&socPolarized, "soc-polarized", false, "keep a single spin sector")
	cmd.Flags().BoolVar(&noSzPart, "no-sz-part", false, "drop the diagonal spin-orbit part")
	cmd.Flags().Float64Var(&socSz, "soc-sz", tmd.DefaultSOCSz, "spin projection of the polarized sector")
	cmd.Flags().BoolVar(&lat4, "lat4", false, "use the four-site rectangular cell")
	cmd.Flags().BoolVar(&singleOrbital, "single-orbital", false, "split sites into per-orbital sublattices")
	return cmd
}

// buildOptions translates build flags into model options.
func buildOptions(tableName, material string, soc, socFlip, socPolarized, noSzPart bool,
	socSz float64, lat4, singleOrbital bool) ([]tmd.Option, error) {
	var opts []tmd.Option
	if material != "" && tableName == "" {
		return nil, fmt.Errorf("--material requires --table")
	}
	if tableName != "" {
		table, err := params.LookupTable(tableName)
		if err != nil {
			return nil, err
		}
		mat := material
		if mat == "" {
			mat = "MoS2"
		}
		set, err := table.Get(mat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tmd.WithParams(set))
	}
	if soc {
		opts = append(opts, tmd.WithSOC())
	}
	if socFlip {
		opts = append(opts, tmd.WithSOCEOFlip())
	}
	if socPolarized {
		opts = append(opts, tmd.WithSOCPolarized())
	}
	if noSzPart {
		opts = append(opts, tmd.WithoutSOCSzPart())
	}
	if socSz != tmd.DefaultSOCSz {
		opts = append(opts, tmd.WithSOCSz(socSz))
	}
	if lat4 {
		opts = append(opts, tmd.WithLat4())
	}
	if singleOrbital {
		opts = append(opts, tmd.WithSingleOrbital())
	}
	return opts, nil
}
