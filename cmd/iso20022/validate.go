package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/compliance"
	"openpayments.dev/iso20022/model"
	"openpayments.dev/iso20022/valid"
)

const (
	formatText = "text"
	formatJSON = "json"
)

func (a *app) validateCmd() *cobra.Command {
	var (
		strict   bool
		failFast bool
		jobs     int
		hash     string
		format   string
	)
	cmd := &cobra.Command{
		Use:   "validate PATH...",
		Short: "parse and validate documents; directories are searched for .xml and .json files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				a.cfg.Compliance = compliance.Permissive.String()
				if strict {
					a.cfg.Compliance = compliance.Strict.String()
				}
			}
			if cmd.Flags().Changed("fail-fast") {
				a.cfg.FailFast = failFast
			}
			if cmd.Flags().Changed("jobs") {
				a.cfg.Jobs = jobs
			}
			if cmd.Flags().Changed("hash") {
				a.cfg.Hash = hash
			}
			if err := a.cfg.Check(); err != nil {
				return err
			}
			if format != formatText && format != formatJSON {
				return fmt.Errorf("unknown format %q", format)
			}
			mode, _ := compliance.ParseMode(a.cfg.Compliance)
			alg, _ := cidutil.ParseAlgorithm(a.cfg.Hash)

			files, err := collect(args, extXML, extJSON)
			if err != nil {
				return err
			}
			var opts []valid.Option
			if a.cfg.FailFast {
				opts = append(opts, valid.FailFast())
			}

			reports := make([]model.ValidationReport, len(files))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Jobs)
			for i, f := range files {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					doc, err := load(f, mode)
					reports[i] = model.NewReport(f, doc, err, alg, opts...)
					a.log.Debug("validated", zap.String("file", f), zap.Bool("valid", reports[i].Valid))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			batch := model.BatchReport{
				Compliance: model.ComplianceMode(mode.String()),
				Reports:    reports,
				Summary:    model.Summarize(reports),
			}
			if format == formatJSON {
				if err := model.WriteJSON(a.out, batch); err != nil {
					return err
				}
			} else {
				writeText(a.out, batch)
			}
			a.log.Info("validation finished",
				zap.String("compliance", mode.String()),
				zap.Int("total", batch.Summary.Total),
				zap.Int("invalid", batch.Summary.Invalid))
			if batch.Summary.Invalid > 0 {
				return failed(nil)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "require the Document envelope and namespace")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop each document at its first violation")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "documents validated concurrently")
	cmd.Flags().StringVar(&hash, "hash", string(cidutil.SHA2_256), "CID hash function (sha2-256, sha3-256)")
	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	return cmd
}

func writeText(w io.Writer, batch model.BatchReport) {
	for _, r := range batch.Reports {
		switch {
		case r.Error != nil:
			fmt.Fprintf(w, "%s: ERROR %s\n", r.File, r.Error.Message)
		case r.Valid:
			fmt.Fprintf(w, "%s: OK %s %s\n", r.File, r.MessageID, r.CID)
		default:
			fmt.Fprintf(w, "%s: INVALID %s\n", r.File, r.MessageID)
			for _, v := range r.Violations {
				fmt.Fprintf(w, "  %s: %s [%s %d]\n", v.Path, v.Message, v.Rule, v.Code)
			}
		}
	}
	s := batch.Summary
	fmt.Fprintf(w, "%d document(s), %d valid, %d invalid\n", s.Total, s.Valid, s.Invalid)
}
