// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package main

import (
	"os"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/woozymasta/treesnap"
)

// defaultExtensions mirror the snapshot scripts' allow-list.
var defaultExtensions = []string{"py", "sh", "md", "html", "txt", "go"}

// sumCmd writes the codebase snapshot document.
var sumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Generate a codebase snapshot with tree, file contents and manifest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		walker, err := newWalker(true)
		if err != nil {
			log.Error("Error preparing walker", "error", err)
			return err
		}

		exts := viper.GetStringSlice("extensions")
		if len(exts) == 0 {
			exts = defaultExtensions
		}

		collector := treesnap.NewCollector(walker, treesnap.CollectorOptions{
			Extensions: exts,
		})

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if output == "" {
			output = "CodebaseSummary_" + time.Now().Format("20060102_150405") + ".txt"
		}

		f, err := os.Create(output)
		if err != nil {
			log.Error("Error creating output file", "error", err)
			return err
		}

		summary, werr := collector.WriteSnapshot(cmd.Context(), f)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			log.Error("Error writing snapshot", "error", werr)
			return werr
		}

		log.Info("Snapshot generated",
			"output", output,
			"files", len(summary.Manifest),
			"unreadable", summary.Unreadable)
		return nil
	},
}

func init() {
	sumCmd.Flags().StringP("output", "o", "", "output file (default CodebaseSummary_<stamp>.txt)")
	sumCmd.Flags().StringSlice("extensions", nil, "file extension allow-list")
	_ = viper.BindPFlag("extensions", sumCmd.Flags().Lookup("extensions"))
	rootCmd.AddCommand(sumCmd)
}
