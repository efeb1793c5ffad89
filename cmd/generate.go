package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mdrakibulhaquesardar/flx-cli/internal/generator"
	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
)

// planFunc selects one of the five generation operations.
type planFunc func(*generator.Generator, string) (*generator.FileSet, error)

// newGenerateCommand builds a generation subcommand. Each takes exactly one
// NAME argument, honors --output for the target root and --check for the
// verify-only mode.
func newGenerateCommand(use, short string, plan planFunc) *cobra.Command {
	var (
		outputDir string
		check     bool
	)
	cmd := &cobra.Command{
		Use:   use + " NAME",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runGenerate(args[0], outputDir, check, plan)
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "root directory to generate into")
	cmd.Flags().BoolVar(&check, "check", false, "verify generated files against disk instead of writing")
	return cmd
}

func runGenerate(name, outputDir string, check bool, plan planFunc) error {
	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, ".")
	if err != nil {
		return err
	}

	g := generator.New(fs, outputDir, cfg)
	set, err := plan(g, name)
	if err != nil {
		return err
	}

	if check {
		if err := g.Verify(set); err != nil {
			return err
		}
		fmt.Printf("%s %d file(s) up to date\n", color.GreenString("OK"), set.Len())
		return nil
	}

	written, werr := g.Write(set)
	for _, p := range written {
		fmt.Printf("  %s %s\n", color.GreenString("create"), p)
	}
	if werr != nil {
		return werr
	}
	fmt.Printf("%s generated %d file(s)\n", color.GreenString("✓"), len(written))
	return nil
}

func init() {
	rootCmd.AddCommand(NewFeatureCommand())
	rootCmd.AddCommand(NewScreenCommand())
	rootCmd.AddCommand(NewModelCommand())
	rootCmd.AddCommand(NewUseCaseCommand())
	rootCmd.AddCommand(NewRepositoryCommand())
}

// NewFeatureCommand generates the full layered feature tree.
func NewFeatureCommand() *cobra.Command {
	return newGenerateCommand("feature", "Generate a full feature (data, domain, presentation)",
		func(g *generator.Generator, name string) (*generator.FileSet, error) { return g.PlanFeature(name) })
}

// NewScreenCommand generates a standalone screen without data/domain wiring.
func NewScreenCommand() *cobra.Command {
	return newGenerateCommand("screen", "Generate a standalone screen (page, binding, state manager)",
		func(g *generator.Generator, name string) (*generator.FileSet, error) { return g.PlanScreen(name) })
}

// NewModelCommand generates a shared model file.
func NewModelCommand() *cobra.Command {
	return newGenerateCommand("model", "Generate a shared data model",
		func(g *generator.Generator, name string) (*generator.FileSet, error) { return g.PlanModel(name) })
}

// NewUseCaseCommand generates a shared use case file.
func NewUseCaseCommand() *cobra.Command {
	return newGenerateCommand("usecase", "Generate a shared use case",
		func(g *generator.Generator, name string) (*generator.FileSet, error) { return g.PlanUseCase(name) })
}

// NewRepositoryCommand generates a shared repository interface and implementation.
func NewRepositoryCommand() *cobra.Command {
	return newGenerateCommand("repository", "Generate a shared repository (interface + implementation)",
		func(g *generator.Generator, name string) (*generator.FileSet, error) { return g.PlanRepository(name) })
}
