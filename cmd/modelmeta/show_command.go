package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modelmeta/internal/metadata"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "show <sidecar-file>",
		Short:       "Display a saved metadata sidecar",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read sidecar: %w", err)
			}

			var bundle metadata.Bundle
			if err := json.Unmarshal(data, &bundle); err != nil {
				return fmt.Errorf("parse sidecar %s: %w", args[0], err)
			}
			if len(bundle.ModelVersion) == 0 {
				return fmt.Errorf("%s does not contain a model version record", args[0])
			}

			summary := metadata.Summarize(bundle)
			if summary.ModelName == "" {
				summary.ModelName = metadata.DisplayTitle(args[0])
			}

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			printSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Render output as JSON")
	return cmd
}
