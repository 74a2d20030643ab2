package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-keeper-sdk/internal/notation"
)

var notationCmd = &cobra.Command{
	Use:   "notation <text>",
	Short: "Parse a keeper:// notation string and show its sections",
	Long: `Parses a notation string without contacting the vault and prints the
record token, selector, parameter, and indices it resolves to. Useful for
checking escaping before wiring a notation into automation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := notation.Parse(args[0])
		if err != nil {
			return err
		}

		printSectionToken("record", parsed.Record.Text)
		printSectionToken("selector", parsed.Selector.Text)
		printSectionToken("parameter", parsed.Selector.Parameter)
		printSectionToken("index1", parsed.Selector.Index1)
		printSectionToken("index2", parsed.Selector.Index2)
		fmt.Printf("%-10s %s\n", "canonical", parsed.String())
		return nil
	},
}

func printSectionToken(name string, token *notation.Token) {
	if token == nil {
		return
	}
	fmt.Printf("%-10s %s\n", name, color.CyanString("%q", token.Text))
}
