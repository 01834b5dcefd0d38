package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/syssam/pgc"
	"github.com/syssam/pgc/compiler/request"
	"github.com/syssam/pgc/internal/cli"
)

var pluginFormat string

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Read a request on stdin and write the JSON response on stdout",
	Long: `Read a request payload on stdin and write the JSON response on stdout.

The response is {"files": [{"path": ..., "content": ...}]} on success and
{"error": "..."} on failure. The command exits with 0 in both cases, so a
host can always read the response.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := request.ParseFormat(pluginFormat)
		if err != nil {
			return cli.ConfigError("request format", err)
		}
		payload, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return cli.RequestError("reading stdin", err)
		}
		_, err = cmd.OutOrStdout().Write(pgc.Handle(payload, format))
		return err
	},
}

func init() {
	pluginCmd.Flags().StringVar(&pluginFormat, "format", "json", "request format: json, yaml or msgpack")
}
