// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/woozymasta/treesnap"
)

// checkCmd explains the ignore verdict for given paths.
var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Explain the ignore verdict for paths relative to the root",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns, err := loadPatterns()
		if err != nil {
			log.Error("Error loading rules", "error", err)
			return err
		}

		decider := treesnap.NewDecider(patterns, treesnap.MatcherOptions{
			CaseInsensitive: viper.GetBool("case_insensitive"),
		})

		root := viper.GetString("root")
		for _, rel := range args {
			info, err := os.Lstat(filepath.Join(root, filepath.FromSlash(rel)))
			isDir := err == nil && info.IsDir()

			decision := decider.Decide(rel, isDir)
			verdict := "included"
			if decision.Ignored {
				verdict = "ignored"
			}

			switch {
			case decision.Matched:
				p := patterns[decision.PatternIndex]
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\trule %d (%s)\n",
					rel, verdict, decision.PatternIndex, p.Text)
			case decision.Cascaded:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tparent directory ignored\n", rel, verdict)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tno rule matched\n", rel, verdict)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
