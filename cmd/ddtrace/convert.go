package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/ddcov/cmd/ddtrace/logger"
	"github.com/joshuapare/ddcov/dragondance"
)

var (
	convertModules      string
	convertAtomic       bool
	convertStdout       bool
	convertNameEncoding string
)

// nameEncodings maps --name-encoding values to encoders. A nil encoding
// writes names unchanged.
var nameEncodings = map[string]encoding.Encoding{
	"utf8":        nil,
	"windows1252": charmap.Windows1252,
	"latin1":      charmap.ISO8859_1,
}

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertModules, "modules", "m", "", "Module map file (name,base,end per line)")
	cmd.Flags().BoolVar(&convertAtomic, "atomic", false, "Write to a temp file and rename it into place")
	cmd.Flags().BoolVar(&convertStdout, "stdout", false, "Write the trace to stdout instead of a file")
	cmd.Flags().StringVar(&convertNameEncoding, "name-encoding", "utf8",
		"Encoding for module names ("+strings.Join(encodingNames(), ", ")+")")
	_ = cmd.MarkFlagRequired("modules")
	rootCmd.AddCommand(cmd)
}

func encodingNames() []string {
	names := make([]string, 0, len(nameEncodings))
	for name := range nameEncodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert --modules <map> <events> [output.dd]",
		Short: "Convert recorded events to a Dragondance coverage file",
		Long: `The convert command reads a module map and a list of executed blocks and
writes a Dragondance Pin Helper coverage file.

The module map holds one "name,base,end" line per loaded image. The events
file holds one "pc size" (or "pc,size") line per executed block, in the order
they were executed. Numbers use Go literal syntax, so 0x1000 and 4096 are
both accepted. Blank lines and lines starting with # are ignored.

Example:
  ddtrace convert --modules modules.txt events.txt trace.dd
  ddtrace convert -m modules.txt events.txt --stdout > trace.dd
  ddtrace convert -m modules.txt events.txt trace.dd --name-encoding windows1252`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), args)
		},
	}
	return cmd
}

func runConvert(stdout io.Writer, args []string) error {
	eventsPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && convertStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}
	if outputPath == "" && !convertStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	enc, ok := nameEncodings[strings.ToLower(convertNameEncoding)]
	if !ok {
		return fmt.Errorf("unknown name encoding %q (want one of %s)",
			convertNameEncoding, strings.Join(encodingNames(), ", "))
	}

	modules, err := readModules(convertModules)
	if err != nil {
		return err
	}
	logger.Debug("loaded module map", "path", convertModules, "modules", len(modules))
	for i, m := range modules {
		logger.Debug("module", "index", i+1, "module", m.String())
	}

	trace := dragondance.NewTrace(modules)
	if err := readEvents(eventsPath, trace); err != nil {
		return err
	}
	logger.Debug("recorded events", "path", eventsPath, "entries", trace.Len())

	opts := dragondance.DefaultWriteOptions()
	opts.NameEncoding = enc

	switch {
	case convertStdout:
		err = trace.WriteWith(stdout, opts)
	case convertAtomic:
		err = trace.SaveAtomic(outputPath, opts)
	default:
		err = trace.SaveWith(outputPath, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}

	if !convertStdout {
		logger.Info("wrote trace", "path", outputPath, "entries", trace.Len(), "modules", len(modules))
	}
	return nil
}

func readModules(path string) ([]dragondance.Module, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open module map: %w", err)
	}
	defer f.Close()

	modules, err := parseModules(f)
	if err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		logger.Warn("module map is empty", "path", path)
	}
	return modules, nil
}

func readEvents(path string, trace *dragondance.Trace) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open events: %w", err)
	}
	defer f.Close()

	return addEvents(f, trace)
}
