// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package main

import (
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/treesnap"
)

// treeCmd renders the ignore-aware tree view.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render the ignore-aware project tree",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		walker, err := newWalker(true)
		if err != nil {
			log.Error("Error preparing walker", "error", err)
			return err
		}

		renderer := treesnap.NewTreeRenderer(walker)
		if err := renderer.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
			log.Error("Error rendering tree", "error", err)
			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
