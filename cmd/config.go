package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
)

func init() {
	rootCmd.AddCommand(NewConfigCommand())
}

// NewConfigCommand rewrites flx.config.json and exits; it never generates
// files. When the file already exists the user is asked before it is
// overwritten, unless --force is given.
func NewConfigCommand() *cobra.Command {
	var (
		stateManager string
		freezed      bool
		equatable    bool
		author       string
		force        bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the flx configuration file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fs := afero.NewOsFs()
			cfg, err := config.Load(fs, ".")
			if err != nil {
				return err
			}

			if c.Flags().Changed("state-manager") {
				switch config.StateManager(stateManager) {
				case config.GetX, config.Bloc:
					cfg.DefaultStateManager = config.StateManager(stateManager)
				default:
					return fmt.Errorf("unknown state manager %q (want getx or bloc)", stateManager)
				}
			}
			// selecting one family deselects the other; freezed is applied
			// last so it keeps precedence when both flags are given
			if c.Flags().Changed("equatable") {
				cfg.UseValueEquality = equatable
				if equatable {
					cfg.UseImmutableModels = false
				}
			}
			if c.Flags().Changed("freezed") {
				cfg.UseImmutableModels = freezed
				if freezed {
					cfg.UseValueEquality = false
				}
			}
			if c.Flags().Changed("author") {
				cfg.Author = author
			}

			if config.Exists(fs, ".") && !force {
				ok, err := confirm(c.InOrStdin(), c.OutOrStdout(),
					fmt.Sprintf("%s exists, overwrite? [y/N] ", config.FileName))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(c.OutOrStdout(), "aborted")
					return nil
				}
			}

			if err := config.Save(fs, ".", cfg); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%s wrote %s\n", color.GreenString("✓"), config.FileName)
			return nil
		},
	}
	cmd.Flags().StringVar(&stateManager, "state-manager", "", "default state manager (getx or bloc)")
	cmd.Flags().BoolVar(&freezed, "freezed", false, "use immutable (freezed) models")
	cmd.Flags().BoolVar(&equatable, "equatable", false, "use value-equality (equatable) models")
	cmd.Flags().StringVar(&author, "author", "", "author recorded in the configuration")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration without asking")
	return cmd
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}
