package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfields/pkg/definition"
	"github.com/goliatone/go-formfields/pkg/form"
	"github.com/goliatone/go-formfields/pkg/i18n"
	"github.com/goliatone/go-formfields/pkg/widgets"
)

type renderOptions struct {
	file        string
	lang        string
	errorsPath  string
	snapshot    string
	output      string
	templateDir string
	localesDir  string
	keyFallback bool
}

func newRenderCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a form definition to HTML",
		Example: `  # Render a form
  formfields render -f signup.yaml

  # Render in Dutch with errors from a 422 response body
  formfields render -f signup.yaml --lang nl --errors response.json -o signup.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "form definition (YAML)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "form language, overrides the definition")
	cmd.Flags().StringVar(&opts.errorsPath, "errors", "", "JSON validation response to map onto fields")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "flash snapshot token produced by the snapshot command")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.templateDir, "templates", "", "directory with template overrides")
	cmd.Flags().StringVar(&opts.localesDir, "locales", "", "directory with <lang>.yaml translation overrides")
	cmd.Flags().BoolVar(&opts.keyFallback, "key-fallback", false, "render missing translations as their key instead of failing")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	f, fc, err := loadForm(opts.file, *logger)
	if err != nil {
		return err
	}

	if opts.snapshot != "" {
		restored, err := form.DecodeSnapshot(opts.snapshot)
		if err != nil {
			return err
		}
		applySnapshot(fc, restored)
	}
	if opts.errorsPath != "" {
		mapping, err := readErrorMapping(opts.errorsPath, f.FieldNames())
		if err != nil {
			return err
		}
		fc.PublishMapping(mapping)
	}
	if opts.lang != "" {
		fc.SetLanguage(opts.lang)
	}

	registry := prometheus.NewRegistry()
	renderer, err := newRenderer(opts, registry)
	if err != nil {
		return err
	}

	html, err := renderer.RenderForm(ctx, f, fc)
	if err != nil {
		return err
	}
	reportMissingTranslations(*logger, registry)

	if opts.output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	logger.Info().Str("output", opts.output).Int("fields", len(f.Widgets)).Msg("form written")
	return nil
}

func loadForm(path string, logger zerolog.Logger) (widgets.Form, *form.Context, error) {
	def, err := definition.LoadFile(path)
	if err != nil {
		return widgets.Form{}, nil, err
	}
	return definition.Build(def, definition.WithLogger(logger))
}

func readErrorMapping(path string, fieldNames []string) (form.ErrorMapping, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return form.ErrorMapping{}, fmt.Errorf("render: read errors: %w", err)
	}
	resp, err := form.ParseValidationResponse(body)
	if err != nil {
		return form.ErrorMapping{}, fmt.Errorf("%s: %w", path, err)
	}
	return resp.Mapping(fieldNames), nil
}

func applySnapshot(fc *form.Context, restored *form.Context) {
	fc.PublishMapping(form.ErrorMapping{
		Fields: restored.Errors(),
		Form:   restored.FormErrors(),
	})
	if lang := restored.Language(); lang != "" {
		fc.SetLanguage(lang)
	}
}

func newRenderer(opts *renderOptions, registry prometheus.Registerer) (*widgets.Renderer, error) {
	table, err := i18n.DefaultTable()
	if err != nil {
		return nil, err
	}
	if opts.localesDir != "" {
		overrides, err := i18n.LoadTable(os.DirFS(opts.localesDir))
		if err != nil {
			return nil, err
		}
		table = i18n.Merge(table, overrides)
	}

	catalogOpts := []i18n.CatalogOption{i18n.WithRegisterer(registry)}
	if opts.keyFallback {
		catalogOpts = append(catalogOpts, i18n.WithOnMissing(i18n.KeyOnMissing))
	}
	catalog, err := i18n.NewCatalog(table, catalogOpts...)
	if err != nil {
		return nil, err
	}

	return widgets.New(
		widgets.WithTranslator(catalog),
		widgets.WithTemplateDir(opts.templateDir),
	)
}

func reportMissingTranslations(logger zerolog.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		logger.Debug().Err(err).Msg("gather metrics")
		return
	}
	for _, family := range families {
		if !strings.HasSuffix(family.GetName(), "missing_translations_total") {
			continue
		}
		for _, metric := range family.GetMetric() {
			lang := ""
			for _, label := range metric.GetLabel() {
				if label.GetName() == "language" {
					lang = label.GetValue()
				}
			}
			logger.Warn().
				Str("language", lang).
				Float64("count", metric.GetCounter().GetValue()).
				Msg("missing translations rendered as keys")
		}
	}
}
