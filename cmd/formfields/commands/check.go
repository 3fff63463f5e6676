package commands

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfields/pkg/definition"
)

func newCheckCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate every field of a form definition",
		Long: `Check loads a form definition and constructs every field, reporting
missing names, unknown widget kinds and invalid configuration without
rendering.`,
		Example: `  formfields check -f signup.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.Ctx(cmd.Context())

			def, err := definition.LoadFile(file)
			if err != nil {
				return err
			}
			f, _, err := definition.Build(def, definition.WithLogger(*logger))
			if err != nil {
				problems := splitJoined(err)
				for _, problem := range problems {
					fmt.Fprintln(cmd.OutOrStdout(), problem.Error())
				}
				return fmt.Errorf("check: %s: %d problem(s)", file, len(problems))
			}

			logger.Debug().Str("file", file).Msg("definition checked")
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d fields)\n", file, len(f.Widgets))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "form definition (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func splitJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
