package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"modelmeta/internal/civitai"
	"modelmeta/internal/logging"
	"modelmeta/internal/metadata"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	var jsonOut bool

	ctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:   "modelmeta <model-file> <output-dir>",
		Short: "Fetch Civitai metadata sidecars for local model files",
		Long: `Modelmeta hashes a local model file, looks the digest up in the Civitai
registry, and saves the matching model version and model records as a JSON
sidecar in the output directory. The sidecar is named after the model file
with its extension replaced by .json.`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Runs after cobra validates args; usage is only reprinted for
			// argument errors.
			cmd.SilenceUsage = true
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, ctx, args[0], args[1], jsonOut)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "Render the fetch result as JSON")

	rootCmd.AddCommand(newHashCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runFetch(cmd *cobra.Command, cctx *commandContext, modelPath, outputDir string, jsonOut bool) error {
	cfg, err := cctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cctx.ensureLogger()
	if err != nil {
		return err
	}

	client, err := civitai.New(
		cfg.Civitai.BaseURL,
		time.Duration(cfg.Civitai.RequestTimeout)*time.Second,
		civitai.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create registry client: %w", err)
	}

	fetcher := metadata.NewFetcher(cfg, client, logger)

	runCtx := logging.WithCorrelationID(cmd.Context(), uuid.NewString())
	result, err := fetcher.FetchFile(runCtx, modelPath, outputDir)
	if err != nil {
		return err
	}

	if jsonOut {
		payload := struct {
			*metadata.Result
			Summary *metadata.Summary `json:"summary,omitempty"`
		}{Result: result}
		if result.Outcome == metadata.OutcomeSaved && result.Bundle != nil {
			summary := bundleSummary(result)
			payload.Summary = &summary
		}
		return writeJSON(cmd, payload)
	}

	renderFetchResult(cmd, result)
	return nil
}

func renderFetchResult(cmd *cobra.Command, result *metadata.Result) {
	out := cmd.OutOrStdout()
	switch result.Outcome {
	case metadata.OutcomeSkipped:
		fmt.Fprintf(out, "Skipped %s: extension does not match the configured model extension\n", result.Path)
	case metadata.OutcomeNoMatch:
		fmt.Fprintf(out, "No registry match for %s (digest %s)\n", result.Path, result.Digest)
	case metadata.OutcomeWriteFailed:
		fmt.Fprintf(out, "Fetched metadata for %s but writing %s failed; see the log for details\n", result.Path, result.SidecarPath)
	case metadata.OutcomeSaved:
		fmt.Fprintf(out, "Saved %s\n", result.SidecarPath)
		if result.Bundle != nil {
			printSummary(cmd, bundleSummary(result))
		}
	}
}

func bundleSummary(result *metadata.Result) metadata.Summary {
	summary := metadata.Summarize(*result.Bundle)
	if summary.ModelName == "" {
		summary.ModelName = metadata.DisplayTitle(result.Path)
	}
	return summary
}
