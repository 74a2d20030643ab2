package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-keeper-sdk/internal/utils"
)

var (
	flagLength int

	passwordCmd = &cobra.Command{
		Use:   "password",
		Short: "Generate a random password",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := utils.GeneratePassword(flagLength)
			if err != nil {
				return err
			}
			fmt.Println(password)
			return nil
		},
	}
)

func init() {
	passwordCmd.Flags().IntVarP(&flagLength, "length", "l", 32, "password length (minimum 4)")
}
