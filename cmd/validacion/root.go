package main

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fiscalmx/validacion/pkg/config"
	"github.com/fiscalmx/validacion/pkg/i18n"
	"github.com/fiscalmx/validacion/pkg/logger"
)

//go:embed locales.yaml
var locales []byte

const rootDesc = "Validate Mexican RFC taxpayer codes and email addresses"
const rootDescLong = rootDesc + `

Values are taken from the arguments or, when there are none, from stdin
(one per line, blank lines skipped). Each value is printed with its result.

Environment:
  VALIDACION_ACCEPT_GENERIC  accept XAXX010101000 / XEXX010101000 (default true)
  VALIDACION_LANG            message language, es or en (default es)
  LOG_LEVEL                  debug, info, warn, error (default info)
  LOG_FORMAT                 text or json (default text)
`

var errInvalidInput = errors.New("invalid input")

type runIDKey struct{}

// app carries what every subcommand needs once the root pre-run is done.
type app struct {
	cfg     Config
	log     *slog.Logger
	tr      *i18n.Translator
	lang    string
	strict  bool
	jsonOut bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var lang string

	cmd := &cobra.Command{
		Use:           "validacion",
		Version:       "v0.1.0",
		Short:         rootDesc,
		Long:          rootDescLong,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return a.init(cmd, lang)
		},
	}

	cmd.PersistentFlags().BoolVar(&a.strict, "strict", false, "exit with an error when any value is invalid")
	cmd.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print one JSON object per value")
	cmd.PersistentFlags().StringVar(&lang, "lang", "", "message language (overrides VALIDACION_LANG)")

	cmd.AddCommand(newRFCCmd(a), newEmailCmd(a))
	return cmd
}

func (a *app) init(cmd *cobra.Command, lang string) error {
	if err := config.Parse(&a.cfg); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component(cmd.Name())),
		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
			id := ctx.Value(runIDKey{})
			return logger.RunID(id), id != nil
		}),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	cmd.SetContext(ctx)

	a.tr, err = i18n.NewTranslator(ctx, &i18n.YAMLAdapter{Content: locales},
		i18n.WithLogger(a.log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return fmt.Errorf("loading translations: %w", err)
	}

	if lang == "" {
		lang = a.cfg.Lang
	}
	a.lang = a.tr.Match(lang)
	return nil
}

// inputs returns args, or the non-blank lines of stdin when args is empty.
func (a *app) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	values, err := readLines(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, errors.New(a.tr.T(a.lang, "cli.no_input"))
	}
	return values, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}

// finish logs the run summary and, in strict mode, turns invalid values into
// an error.
func (a *app) finish(cmd *cobra.Command, total, invalid int) error {
	a.log.InfoContext(cmd.Context(), "validation finished",
		slog.Int("total", total),
		slog.Int("invalid", invalid),
	)
	if !a.strict || invalid == 0 {
		return nil
	}
	msg := a.tr.N(a.lang, "cli.invalid_count", invalid, "count", strconv.Itoa(invalid))
	cmd.PrintErrln(msg)
	return fmt.Errorf("%w: %s", errInvalidInput, msg)
}
