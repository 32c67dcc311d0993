package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fiscalmx/validacion/pkg/email"
	"github.com/fiscalmx/validacion/pkg/logger"
	"github.com/fiscalmx/validacion/pkg/validator"
)

const emailDescLong = `Checks the syntax of email addresses.

Only bare addresses such as user@example.com pass: display names, angle
brackets, comments and trailing dots are rejected. The domain is not looked
up.`

type emailResult struct {
	Input   string `json:"input"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func newEmailCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "email [EMAIL...]",
		Short: "Validate email address syntax",
		Long:  emailDescLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEmail(cmd, args)
		},
	}
}

func (a *app) runEmail(cmd *cobra.Command, args []string) error {
	values, err := a.inputs(cmd, args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	invalid := 0
	for _, v := range values {
		res := emailResult{Input: v, Valid: email.Validate(v)}
		if !res.Valid {
			invalid++
			res.Message = a.explain(validator.Apply(validator.ValidEmail("email", v)))
		}
		a.log.DebugContext(ctx, "email validated", logger.Input(v), logger.Result(res.Valid))

		if err := a.printEmail(cmd, res); err != nil {
			return err
		}
	}
	return a.finish(cmd, len(values), invalid)
}

func (a *app) printEmail(cmd *cobra.Command, res emailResult) error {
	if a.jsonOut {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
	}
	status := "valid"
	if !res.Valid {
		status = "invalid"
	}
	if res.Message != "" {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", res.Input, status, res.Message)
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Input, status)
	return err
}
