// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/similarity-engine/internal/record"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [code]",
	Short: "Check whether a verification code was issued by this checker",
	Long: `Verify looks a code up in the record store. A report is authentic exactly
when its code was issued here: codes are derived from the submitted text, so
they cannot be forged for a different document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		store, err := record.Open(cfg.Records)
		if err != nil {
			return err
		}
		defer store.Close()

		code := strings.ToUpper(strings.TrimSpace(args[0]))
		found, err := store.Get(cmd.Context(), code)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("code %s not found: report is not authentic", code)
		}

		fmt.Printf("authentic: code %s was issued by this checker\n", code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
