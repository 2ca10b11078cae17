package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"openpayments.dev/iso20022/cidutil"
	"openpayments.dev/iso20022/compliance"
)

func (a *app) cidCmd() *cobra.Command {
	var (
		hash   string
		verify string
	)
	cmd := &cobra.Command{
		Use:   "cid FILE",
		Short: "print the CID of a document's canonical XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("hash") {
				a.cfg.Hash = hash
			}
			alg, err := cidutil.ParseAlgorithm(a.cfg.Hash)
			if err != nil {
				return err
			}
			mode, err := compliance.ParseMode(a.cfg.Compliance)
			if err != nil {
				return err
			}
			doc, err := load(args[0], mode)
			if err != nil {
				return failed(err)
			}
			if verify != "" {
				b, err := doc.Render()
				if err != nil {
					return failed(err)
				}
				ok, err := cidutil.Verify(b, verify)
				if err != nil {
					return err
				}
				if !ok {
					return failed(fmt.Errorf("%s: CID mismatch", args[0]))
				}
				fmt.Fprintln(a.out, "OK")
				return nil
			}
			c, err := doc.CID(alg)
			if err != nil {
				return failed(err)
			}
			fmt.Fprintln(a.out, c)
			return nil
		},
	}
	cmd.Flags().StringVar(&hash, "hash", string(cidutil.SHA2_256), "hash function (sha2-256, sha3-256)")
	cmd.Flags().StringVar(&verify, "verify", "", "check the document against this CID instead of printing one")
	return cmd
}
