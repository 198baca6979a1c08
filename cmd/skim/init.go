package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/skim/internal/config"
	"github.com/jackzampolin/skim/internal/home"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the skim home directory and a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() {
			fmt.Printf("Config already exists: %s\n", h.ConfigPath())
			return nil
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		fmt.Printf("Initialized %s\n", h.Path())
		fmt.Printf("Wrote default config: %s\n", h.ConfigPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
