// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/treesnap

package main

import (
	"errors"
	"path/filepath"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/woozymasta/treesnap"
)

var rootCmd = &cobra.Command{
	Use:           "treesnap",
	Short:         "Ignore-aware project tree tools",
	Long:          "Render, back up and snapshot a project tree while respecting gitignore-style rules.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("root", "r", ".", "project root directory")
	rootCmd.PersistentFlags().String("rules-file", ".gitignore", "ignore rules file name inside the root")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "extra always-on exclude rules")
	rootCmd.PersistentFlags().Bool("case-insensitive", false, "match patterns case-insensitively")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("rules_file", rootCmd.PersistentFlags().Lookup("rules-file"))
	_ = viper.BindPFlag("exclude", rootCmd.PersistentFlags().Lookup("exclude"))
	_ = viper.BindPFlag("case_insensitive", rootCmd.PersistentFlags().Lookup("case-insensitive"))
}

// initConfig loads the optional .treesnap.yaml and TREESNAP_* environment.
func initConfig() {
	viper.SetConfigName(".treesnap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("TREESNAP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Warn("Skipping config file", "error", err)
		}
	}
}

// loadPatterns reads user rules and appends always-on excludes last.
func loadPatterns() ([]treesnap.Pattern, error) {
	root := viper.GetString("root")

	user, err := treesnap.LoadRulesFile(filepath.Join(root, viper.GetString("rules_file")))
	if err != nil {
		return nil, err
	}

	lines := append([]string{}, treesnap.DefaultExcludeLines...)
	lines = append(lines, viper.GetStringSlice("exclude")...)

	return treesnap.MergePatterns(user, treesnap.CompileLines(lines)), nil
}

// newWalker builds a walker from shared flags.
func newWalker(dirsFirst bool) (*treesnap.Walker, error) {
	patterns, err := loadPatterns()
	if err != nil {
		return nil, err
	}

	return treesnap.NewWalker(viper.GetString("root"), treesnap.WalkOptions{
		Patterns: patterns,
		MatcherOptions: treesnap.MatcherOptions{
			CaseInsensitive: viper.GetBool("case_insensitive"),
		},
		DirsFirst: dirsFirst,
	})
}
