package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/sketchparams/core/paramfmt"
	"github.com/aledsdavies/sketchparams/core/types"
	"github.com/aledsdavies/sketchparams/runtime/inference"
	"github.com/aledsdavies/sketchparams/runtime/project"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

// Output formats for -o
const (
	formatJSON   = "json"
	formatYAML   = "yaml"
	formatCBOR   = "cbor"
	formatDigest = "digest"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags shared by the subcommands
type flags struct {
	projectFile string
	paramsFile  string
	output      string
	sections    bool
	live        bool
	debug       bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "sketchparams",
		Short: "Resolve sketch parameters from values, annotations and overrides",
		Long: `sketchparams turns the fields of a creative-coding project into typed UI
parameter configs. Each field's value picks the kind, its trailing comment
refines name, range, step and style, and an override file has the last word.`,
		SilenceUsage: true,
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the parameters of a project descriptor",
		Long: `Resolve reads a project descriptor (YAML) and prints the resolved parameter
configs. By default it looks for project.yaml in the current directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolveCommand(cmd, f)
		},
	}

	shaderCmd := &cobra.Command{
		Use:   "shader <file>",
		Short: "Resolve the parameters declared as uniforms in a shader",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shaderCommand(cmd, f, args[0])
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version, build time, and git commit information for sketchparams.",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sketchparams %s\n", Version)
			fmt.Fprintf(out, "Built: %s\n", BuildTime)
			fmt.Fprintf(out, "Commit: %s\n", GitCommit)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&f.paramsFile, "params", "c", "", "Path to a JSON or YAML override file")
	rootCmd.PersistentFlags().StringVarP(&f.output, "output", "o", formatJSON, "Output format: json, yaml, cbor or digest")
	rootCmd.PersistentFlags().BoolVar(&f.sections, "sections", false, "Group output by section (json and yaml only)")
	rootCmd.PersistentFlags().BoolVar(&f.debug, "debug", false, "Enable debug output")

	// Command specific flags
	resolveCmd.Flags().StringVarP(&f.projectFile, "file", "f", "project.yaml", "Path to project descriptor")
	shaderCmd.Flags().BoolVar(&f.live, "live", false, "Apply parameter changes during input")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(shaderCmd)
	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func resolveCommand(cmd *cobra.Command, f *flags) error {
	log := newLogger(cmd.ErrOrStderr(), f.debug)

	p, err := project.Load(f.projectFile)
	if err != nil {
		return err
	}

	var overrides map[string]json.RawMessage
	if f.paramsFile != "" {
		overrides, err = project.LoadOverrides(f.paramsFile)
	} else {
		overrides, err = p.Overrides()
	}
	if err != nil {
		return err
	}

	opts := inference.DefaultOptions()
	opts.Logger = log

	params, err := p.Resolve(overrides, opts)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", f.projectFile, err)
	}
	log.Debug("resolved project", "name", p.Name, "params", len(params))

	var docFlags paramfmt.Flags
	if p.Shader != "" {
		docFlags |= paramfmt.FlagShader
	}
	if p.LiveUpdates {
		docFlags |= paramfmt.FlagLiveUpdates
	}
	return writeParams(cmd.OutOrStdout(), f, &paramfmt.Document{Flags: docFlags, Params: params})
}

func shaderCommand(cmd *cobra.Command, f *flags, path string) error {
	log := newLogger(cmd.ErrOrStderr(), f.debug)

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading file %s: %w", path, err)
	}

	var overrides map[string]json.RawMessage
	if f.paramsFile != "" {
		if overrides, err = project.LoadOverrides(f.paramsFile); err != nil {
			return err
		}
	}

	opts := inference.DefaultOptions()
	opts.Logger = log
	opts.LiveUpdates = f.live

	params, err := inference.ShaderConfigs(string(src), overrides, opts)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	docFlags := paramfmt.FlagShader
	if f.live {
		docFlags |= paramfmt.FlagLiveUpdates
	}
	return writeParams(cmd.OutOrStdout(), f, &paramfmt.Document{Flags: docFlags, Params: params})
}

func writeParams(w io.Writer, f *flags, doc *paramfmt.Document) error {
	switch f.output {
	case formatCBOR:
		_, err := paramfmt.Write(w, doc)
		return err
	case formatDigest:
		digest, err := paramfmt.Digest(doc.Params)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(digest[:]))
		return err
	case formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml, cbor or digest)", f.output)
	}

	var (
		data []byte
		err  error
	)
	if f.sections {
		data, err = marshalSections(doc.Params)
	} else {
		data, err = paramfmt.MarshalJSON(doc.Params)
	}
	if err != nil {
		return err
	}

	if f.output == formatYAML {
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

type sectionJSON struct {
	Name   string          `json:"name"`
	Params json.RawMessage `json:"params"`
}

func marshalSections(params []types.ParamConfig) ([]byte, error) {
	unsectioned, sections := types.GetParamSections(params)

	loose, err := paramfmt.MarshalJSON(unsectioned)
	if err != nil {
		return nil, err
	}
	out := struct {
		Unsectioned json.RawMessage `json:"unsectioned"`
		Sections    []sectionJSON   `json:"sections"`
	}{Unsectioned: loose, Sections: make([]sectionJSON, 0, len(sections))}

	for _, s := range sections {
		data, err := paramfmt.MarshalJSON(s.Params)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, sectionJSON{Name: s.Name, Params: data})
	}
	return json.MarshalIndent(out, "", "  ")
}

// jsonToYAML re-encodes JSON as block-style YAML, keeping key order.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	blockStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
