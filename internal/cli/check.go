package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/wat-aro/wjson"
)

// newCheckCmd creates the check command, which validates one or more JSON
// documents. With no arguments it reads a single document from stdin.
func newCheckCmd() *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate JSON documents",
		Long: `Check parses each document with the strict JSON grammar and reports
the first violation with its line and column. Files ending in .gz are
decompressed before parsing. With no files, a single document is read
from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts := wjson.Options{MaxDepth: maxDepth}

			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				return checkOne(logger, "stdin", data, opts)
			}

			invalid := 0
			for _, name := range args {
				data, err := readInput(name)
				if err != nil {
					logger.Error("cannot read input", "file", name, "err", err)
					invalid++
					continue
				}
				if err := checkOne(logger, name, data, opts); err != nil {
					invalid++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d documents invalid", invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum nesting depth (0 uses the engine default)")

	return cmd
}

// readInput reads a file, transparently decompressing .gz inputs.
func readInput(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(name, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return io.ReadAll(r)
}

// checkOne parses a single document and logs the outcome.
func checkOne(logger *log.Logger, name string, data []byte, opts wjson.Options) error {
	v, err := wjson.ParseWithOptions(string(data), opts)
	if err != nil {
		logger.Error("invalid document", "file", name, "err", err)
		return err
	}
	logger.Info("valid document", "file", name, "kind", v.Kind().String(), "len", v.Len())
	return nil
}
