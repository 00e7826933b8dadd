// C:\Users\wasab\OneDrive\デスクトップ\GS1SCAN\decode.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gs1scan/barcode"
)

type decodeFlags struct {
	output string
	now    string
}

func newDecodeCmd() *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "decode <barcode>...",
		Short: "Decode GS1 barcode strings",
		Long: `Decode one or more scanned strings and print the extracted fields.
A literal "\x1d" or "<GS>" in an argument is read as the FNC1 group separator.`,
		Example: `  gs1scan decode "(01)09506000134352(17)271231(10)LOT1"
  gs1scan decode --output yaml "0109506000134352<GS>10LOT1"
  gs1scan decode --now 2026-01-01 4901234567894`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&flags.now, "now", "", "Reference date for expiry checks (YYYY-MM-DD, default: today)")

	return cmd
}

// unescapeGS はコマンドラインで入力しにくいグループセパレータの表記を置き換えます。
func unescapeGS(s string) string {
	s = strings.ReplaceAll(s, `\x1d`, barcode.GroupSeparator)
	return strings.ReplaceAll(s, "<GS>", barcode.GroupSeparator)
}

func runDecode(w io.Writer, args []string, flags *decodeFlags) error {
	clock := time.Now
	if flags.now != "" {
		ref, err := time.ParseInLocation("2006-01-02", flags.now, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --now %q: %w", flags.now, err)
		}
		clock = func() time.Time { return ref }
	}
	dec := barcode.NewDecoder(clock)

	results := make([]*barcode.Result, 0, len(args))
	for _, arg := range args {
		results = append(results, dec.Decode(unescapeGS(arg)))
	}

	switch flags.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(results)
	case "text", "":
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeResultText(w, res); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (text, json, yaml)", flags.output)
	}
}

func writeResultText(w io.Writer, res *barcode.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Input:\t%q\n", res.RawData)
	fmt.Fprintf(tw, "Type:\t%s\n", res.Type)
	if res.Symbology != barcode.SymbologyNone {
		fmt.Fprintf(tw, "Symbology:\t%s\n", res.Symbology)
	}
	fmt.Fprintf(tw, "Success:\t%t\n", res.Success)
	for _, el := range res.ElementList() {
		mark := "ok"
		if !el.IsValid {
			mark = "INVALID"
		}
		fmt.Fprintf(tw, "(%s) %s:\t%s\t%s\n", el.AI, el.Label, el.Value, mark)
	}
	if res.NDC != nil {
		fmt.Fprintf(tw, "NDC:\t%s\n", *res.NDC)
	}
	if res.DaysToExpiry != nil {
		state := "valid"
		if res.IsExpired {
			state = "EXPIRED"
		}
		fmt.Fprintf(tw, "Expiry:\t%s\t%s, %d days\n", *res.ExpiryDate, state, *res.DaysToExpiry)
	}
	for _, warn := range res.Warnings {
		fmt.Fprintf(tw, "Warning:\t%s\n", warn)
	}
	return tw.Flush()
}
