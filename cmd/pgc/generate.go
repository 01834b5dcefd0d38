package main

import (
	"context"
	"errors"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/syssam/pgc"
	"github.com/syssam/pgc/compiler/gen"
	"github.com/syssam/pgc/compiler/request"
	"github.com/syssam/pgc/internal/cli"
	"github.com/syssam/pgc/internal/logger"
	"github.com/syssam/pgc/internal/output"
)

// generateFlags are the flags shared by generate and watch.
type generateFlags struct {
	request   string
	format    string
	out       string
	templates string
	types     string
}

func (f *generateFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.request, "request", "", "request payload file")
	fs.StringVar(&f.format, "format", "", "request format: json, yaml or msgpack (default: from the file extension)")
	fs.StringVar(&f.out, "out", "", "output directory (default: codegen out of the request)")
	fs.StringVar(&f.templates, "templates", "", "directory replacing the bundled templates")
	fs.StringVar(&f.types, "types", "", "YAML file of type overrides")
}

// resolve merges the flags over the loaded configuration.
func (f *generateFlags) resolve(c *cli.Config) *cli.Config {
	if c == nil {
		c = &cli.Config{}
	}
	merged := *c
	merged.Request = resolveString(f.request, c.Request)
	merged.Format = resolveString(f.format, c.Format)
	merged.Out = resolveString(f.out, c.Out)
	merged.Templates = resolveString(f.templates, c.Templates)
	merged.Types = resolveString(f.types, c.Types)
	return &merged
}

var generateOpts generateFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate client code from a request",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd.Context(), fsys, generateOpts.resolve(cfg))
	},
}

func init() {
	generateOpts.register(generateCmd.Flags())
}

// runGenerate reads the request, generates its files and writes them.
// Nothing is written when generation fails.
func runGenerate(ctx context.Context, fs afero.Fs, c *cli.Config) error {
	log := logger.Get()
	if c.Request == "" {
		return cli.ConfigError("no request file", errors.New("set --request or request in pgc.yaml"))
	}
	format, err := c.RequestFormat()
	if err != nil {
		return cli.ConfigError("request format", err)
	}
	payload, err := afero.ReadFile(fs, c.Request)
	if err != nil {
		return cli.RequestError("reading request", err)
	}
	req, err := request.Decode(payload, format)
	if err != nil {
		return cli.RequestError("decoding request", err)
	}

	opts := []gen.Option{gen.WithLogger(log)}
	if c.Templates != "" {
		opts = append(opts, gen.WithTemplates(afero.NewIOFS(afero.NewBasePathFs(fs, c.Templates))))
	}
	if c.Types != "" {
		overrides, err := cli.LoadTypeOverrides(fs, c.Types)
		if err != nil {
			return cli.ConfigError("type overrides", err)
		}
		opts = append(opts, gen.WithTypeOverrides(overrides))
	}

	resp, err := pgc.Build(req, opts...)
	if err != nil {
		if pgc.IsUserError(err) {
			return cli.ConfigError("generating", err)
		}
		return cli.GenerateError("generating", err)
	}
	out := c.ResolvedOut(req)
	if err := output.NewWriter(fs, out).Write(ctx, resp.Files); err != nil {
		return cli.GenerateError("writing files", err)
	}
	log.Info("generated files", "count", len(resp.Files), "out", out,
		"target", req.Config.Codegen.Language+"/"+req.Config.Codegen.Driver)
	return nil
}
