package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fiscalmx/validacion/pkg/logger"
	"github.com/fiscalmx/validacion/pkg/rfc"
	"github.com/fiscalmx/validacion/pkg/validator"
)

const rfcDescLong = `Validates RFC taxpayer codes: structure, date range and check digit.

Four letter codes are reported as "physical" (individuals), three letter
codes as "moral" (legal entities) and anything else as "error". Invalid
values get a short explanation in the configured language.

The generic RFCs XAXX010101000 and XEXX010101000 are accepted unless
--reject-generic is given or VALIDACION_ACCEPT_GENERIC=false.`

type rfcResult struct {
	Input   string `json:"input"`
	Kind    string `json:"kind"`
	Valid   bool   `json:"valid"`
	Generic bool   `json:"generic"`
	Message string `json:"message,omitempty"`
}

func newRFCCmd(a *app) *cobra.Command {
	var rejectGeneric bool

	cmd := &cobra.Command{
		Use:   "rfc [RFC...]",
		Short: "Validate RFC taxpayer codes",
		Long:  rfcDescLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			accept := a.cfg.AcceptGeneric
			if cmd.Flags().Changed("reject-generic") {
				accept = !rejectGeneric
			}
			return a.runRFC(cmd, args, rfc.AcceptGeneric(accept))
		},
	}
	cmd.Flags().BoolVar(&rejectGeneric, "reject-generic", false, "refuse the generic RFCs XAXX010101000 and XEXX010101000")
	return cmd
}

func (a *app) runRFC(cmd *cobra.Command, args []string, opt rfc.Option) error {
	values, err := a.inputs(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	invalid := 0
	for _, v := range values {
		kind := rfc.Validate(v, opt)
		res := rfcResult{
			Input:   v,
			Kind:    kind.String(),
			Valid:   kind.Valid(),
			Generic: rfc.IsGeneric(v),
		}
		if !res.Valid {
			invalid++
			res.Message = a.explain(validator.Apply(validator.ValidRFC("rfc", v, opt)))
		}
		a.log.DebugContext(ctx, "rfc validated", logger.Input(v), logger.Result(kind))

		if err := a.printRFC(cmd, res); err != nil {
			return err
		}
	}
	return a.finish(cmd, len(values), invalid)
}

func (a *app) printRFC(cmd *cobra.Command, res rfcResult) error {
	if a.jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
	}
	if res.Message != "" {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", res.Input, res.Kind, res.Message)
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Input, res.Kind)
	return err
}

// explain returns the translated messages of a failed Apply, joined.
func (a *app) explain(err error) string {
	verrs := validator.Translate(validator.ExtractValidationErrors(err), a.tr, a.lang)
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
