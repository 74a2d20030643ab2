package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-keeper-sdk/internal/notation"
	"github.com/MKhiriev/go-keeper-sdk/internal/totp"
)

var (
	flagOutput string

	secretCmd = &cobra.Command{
		Use:   "secret",
		Short: "Work with vault records",
	}

	secretListCmd = &cobra.Command{
		Use:   "list",
		Short: "List all records shared to this client",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}

			records, err := svc.GetSecrets(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				color.Yellow("no records shared to this client")
				return nil
			}

			for _, record := range records {
				fmt.Printf("%s  %-24s  %s\n",
					color.CyanString(record.RecordUID), record.Type, record.Title)
			}
			return nil
		},
	}

	secretGetCmd = &cobra.Command{
		Use:   "get <uid-or-notation>",
		Short: "Print one record, or one value selected by keeper:// notation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}

			query := args[0]
			if strings.Contains(query, "/") || strings.HasPrefix(strings.ToLower(query), notation.Prefix) {
				value, err := svc.GetNotation(cmd.Context(), query)
				if err != nil {
					return err
				}
				return printValue(value)
			}

			record, err := svc.GetSecretByUID(cmd.Context(), query)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(record, "", "  ")
			if err != nil {
				return fmt.Errorf("render record: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	secretTotpCmd = &cobra.Command{
		Use:   "totp <uid>",
		Short: "Generate the current one-time code from a record's oneTimeCode field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}

			record, err := svc.GetSecretByUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			field, ok := record.GetField("oneTimeCode")
			if !ok || len(field.Value) == 0 {
				return fmt.Errorf("record %s has no oneTimeCode field", args[0])
			}
			url, ok := field.Value[0].(string)
			if !ok {
				return fmt.Errorf("record %s: oneTimeCode value is not a string", args[0])
			}

			code, err := totp.GenerateCode(url)
			if err != nil {
				return err
			}
			fmt.Printf("%s (valid for %ds)\n", color.GreenString(code.Token), code.TimeLeft)
			return nil
		},
	}

	secretDeleteCmd = &cobra.Command{
		Use:   "delete <uid>...",
		Short: "Delete records by UID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}

			statuses, err := svc.DeleteSecrets(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, st := range statuses {
				if strings.EqualFold(st.ResponseCode, "ok") {
					color.Green("%s  deleted", st.RecordUID)
				} else {
					color.Red("%s  %s: %s", st.RecordUID, st.ResponseCode, st.ErrorMessage)
				}
			}
			return nil
		},
	}

	secretDownloadCmd = &cobra.Command{
		Use:   "download <uid> <file-name>",
		Short: "Download and decrypt one attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService()
			if err != nil {
				return err
			}

			record, err := svc.GetSecretByUID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			file, ok := record.GetFile(args[1])
			if !ok {
				return fmt.Errorf("record %s has no file %q", args[0], args[1])
			}

			content, err := svc.DownloadFile(cmd.Context(), file)
			if err != nil {
				return err
			}

			dest := flagOutput
			if dest == "" {
				dest = file.Name
			}
			if err := os.WriteFile(dest, content, 0o600); err != nil {
				return fmt.Errorf("write %s: %w", dest, err)
			}
			color.Green("wrote %d bytes to %s", len(content), dest)
			return nil
		},
	}
)

func init() {
	secretDownloadCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "destination path (default: stored file name)")

	secretCmd.AddCommand(secretListCmd)
	secretCmd.AddCommand(secretGetCmd)
	secretCmd.AddCommand(secretTotpCmd)
	secretCmd.AddCommand(secretDeleteCmd)
	secretCmd.AddCommand(secretDownloadCmd)
}

// printValue renders a resolved notation value: strings verbatim, everything
// else (arrays, objects) as JSON.
func printValue(value any) error {
	if s, ok := value.(string); ok {
		fmt.Println(s)
		return nil
	}
	out, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("render value: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
