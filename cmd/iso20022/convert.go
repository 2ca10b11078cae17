package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openpayments.dev/iso20022/compliance"
)

func (a *app) convertCmd() *cobra.Command {
	var (
		to     string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "convert PATH...",
		Short: "convert documents between canonical XML and JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var srcExt, dstExt string
			switch to {
			case formatJSON:
				srcExt, dstExt = extXML, extJSON
			case "xml":
				srcExt, dstExt = extJSON, extXML
			default:
				return fmt.Errorf("unknown target format %q", to)
			}
			mode, err := compliance.ParseMode(a.cfg.Compliance)
			if err != nil {
				return err
			}
			files, err := collect(args, srcExt)
			if err != nil {
				return err
			}
			if outDir == "" && len(files) > 1 {
				return errors.New("--out is required when converting more than one file")
			}
			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return err
				}
			}

			var errs []error
			for _, f := range files {
				doc, err := load(f, mode)
				if err != nil {
					a.log.Error("convert failed", zap.String("file", f), zap.Error(err))
					errs = append(errs, fmt.Errorf("%s: %w", f, err))
					continue
				}
				var b []byte
				if to == formatJSON {
					if b, err = doc.RenderJSONIndent("", "  "); err == nil {
						b = append(b, '\n')
					}
				} else {
					b, err = doc.Render()
				}
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", f, err))
					continue
				}
				if outDir == "" {
					if _, err := a.out.Write(b); err != nil {
						return err
					}
					continue
				}
				dst := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))+dstExt)
				if err := os.WriteFile(dst, b, 0o644); err != nil {
					return err
				}
				a.log.Info("converted", zap.String("file", f), zap.String("to", dst), zap.String("message", doc.Message.ID))
			}
			if len(errs) > 0 {
				return failed(errors.Join(errs...))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", formatJSON, "target format (json, xml)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory; stdout when converting a single file")
	return cmd
}
