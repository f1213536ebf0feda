// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/treesnap"
)

// backupCmd replicates the included subset of the project tree.
var backupCmd = &cobra.Command{
	Use:   "backup [name]",
	Short: "Copy the included project subset to a timestamped backup directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		walker, err := newWalker(false)
		if err != nil {
			log.Error("Error preparing walker", "error", err)
			return err
		}

		dest, err := cmd.Flags().GetString("dest")
		if err != nil {
			return err
		}

		if dest == "" {
			name := filepath.Base(walker.Root())
			if len(args) == 1 {
				name = args[0]
			}

			dest, err = defaultBackupPath(name)
			if err != nil {
				log.Error("Error resolving backup destination", "error", err)
				return err
			}
		}

		replicator, err := treesnap.NewReplicator(walker, dest)
		if err != nil {
			log.Error("Error preparing replicator", "error", err)
			return err
		}

		log.Info("Backing up project", "root", walker.Root(), "dest", dest)

		summary, err := replicator.Replicate(cmd.Context())
		if err != nil {
			log.Error("Backup aborted", "error", err)
			return err
		}

		for _, e := range summary.Errors {
			log.Warn("Entry skipped", "path", e.RelPath, "error", e.Err)
		}

		log.Info("Backup complete",
			"files", summary.Files,
			"dirs", summary.Dirs,
			"bytes", summary.Bytes,
			"errors", len(summary.Errors))
		fmt.Fprintln(cmd.OutOrStdout(), dest)
		return nil
	},
}

// defaultBackupPath builds "<home>/Desktop/Projects_Backup/<name>_<stamp>".
func defaultBackupPath(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	stamp := time.Now().Format("20060102_150405")
	return filepath.Join(home, "Desktop", "Projects_Backup", name+"_"+stamp), nil
}

func init() {
	backupCmd.Flags().String("dest", "", "explicit destination directory")
	rootCmd.AddCommand(backupCmd)
}
