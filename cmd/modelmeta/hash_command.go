package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelmeta/internal/digest"
)

func newHashCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "hash <model-file>",
		Short:       "Print the SHA-256 digest used for registry lookups",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fileDigest, err := digest.SHA256File(args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, struct {
					Path   string `json:"path"`
					Digest string `json:"digest"`
				}{Path: args[0], Digest: fileDigest})
			}
			fmt.Fprintln(cmd.OutOrStdout(), fileDigest)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Render output as JSON")
	return cmd
}
