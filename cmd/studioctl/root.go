package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"photo_studio/internal/client"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	apiURL  string
	envFile string
	timeout time.Duration
	json    bool
}

func (o *rootOptions) service() *client.StudioService {
	return client.NewStudioService(client.Config{BaseURL: o.apiURL, Timeout: o.timeout})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "studioctl",
		Short:         "studioctl - drive the photo studio API from a terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api", "http://localhost:8080", "photo studio API base URL")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "env file with processor credentials for confirmation")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "per-request timeout")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(catalogCmd(opts))
	rootCmd.AddCommand(quoteCmd(opts))
	rootCmd.AddCommand(orderCmd(opts))

	return rootCmd
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
