// Command iso20022gen regenerates the component and message packages from the
// YAML schemas.
//
//	iso20022gen --schema schema --out .
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openpayments.dev/iso20022/internal/gen"
	"openpayments.dev/iso20022/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	var (
		schemaDir string
		outDir    string
		module    string
		check     bool
	)
	log := logger.New(errOut, "INFO", logger.FormatConsole).Named("iso20022gen")
	defer func() { _ = log.Sync() }()

	cmd := &cobra.Command{
		Use:           "iso20022gen",
		Short:         "generate Go types from ISO 20022 YAML schemas",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := gen.Load(schemaDir)
			if err != nil {
				return err
			}
			files, err := gen.Render(set, module)
			if err != nil {
				return err
			}
			if check {
				stale, err := gen.Stale(outDir, files)
				if err != nil {
					return err
				}
				for _, p := range stale {
					fmt.Fprintln(out, p)
				}
				if len(stale) > 0 {
					return fmt.Errorf("%d generated file(s) out of date", len(stale))
				}
				return nil
			}
			if err := gen.Write(outDir, files); err != nil {
				return err
			}
			log.Info("generated",
				zap.Int("components", len(set.Components)),
				zap.Int("families", len(set.Families)),
				zap.Int("files", len(files)))
			return nil
		},
	}
	cmd.Flags().StringVar(&schemaDir, "schema", "schema", "directory of *.yaml schemas")
	cmd.Flags().StringVar(&outDir, "out", ".", "module root to write into")
	cmd.Flags().StringVar(&module, "module", gen.DefaultModule, "import path of the module root")
	cmd.Flags().BoolVar(&check, "check", false, "list out-of-date files instead of writing")
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		log.Error("generation failed", zap.Error(err))
		return 1
	}
	return 0
}
