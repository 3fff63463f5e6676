package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfields/pkg/form"
)

func newSnapshotCommand() *cobra.Command {
	var (
		file       string
		errorsPath string
		lang       string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Encode validation errors as a flash token",
		Long: `Snapshot maps a JSON validation response onto the fields of a form
definition and prints a URL-safe token that render --snapshot restores, the
way a post-redirect-get flow carries errors across the redirect.`,
		Example: `  token=$(formfields snapshot -f signup.yaml --errors response.json --lang nl)
  formfields render -f signup.yaml --snapshot "$token"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := zerolog.Ctx(cmd.Context())

			f, _, err := loadForm(file, *logger)
			if err != nil {
				return err
			}
			mapping, err := readErrorMapping(errorsPath, f.FieldNames())
			if err != nil {
				return err
			}

			fc := form.NewContext(form.WithLogger(*logger), form.WithLanguage(lang))
			fc.PublishMapping(mapping)

			token, err := form.EncodeSnapshot(fc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "form definition (YAML)")
	cmd.Flags().StringVar(&errorsPath, "errors", "", "JSON validation response")
	cmd.Flags().StringVar(&lang, "lang", "", "language stored in the snapshot")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("errors")

	return cmd
}
