package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"openpayments.dev/iso20022/model"
)

func (a *app) listCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "list the supported messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msgs := model.Messages()
			switch format {
			case formatJSON:
				if err := model.WriteJSON(a.out, msgs); err != nil {
					return err
				}
			case formatText:
				tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tELEMENT\tNAME")
				for _, m := range msgs {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Element, m.Name)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format (text, json)")
	return cmd
}
