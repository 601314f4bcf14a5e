// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled in by the linker for release builds.
var Version string

var rootCmd = &cobra.Command{
	Use:   "rvlearn",
	Short: "An interpreter for a small RISC-V flavoured assembly language.",
	Long: `Lex and run programs written in a teaching subset of RISC-V assembly.
	 Registers are 32-bit, and execution stops once the program counter leaves the program.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !GetFlag(cmd, "version") {
			_ = cmd.Help()
			return
		}

		fmt.Print("rvlearn ")
		if Version != "" {
			fmt.Printf("%s", Version)
		} else if info, ok := debug.ReadBuildInfo(); ok {
			fmt.Printf("%s", info.Main.Version)
		} else {
			fmt.Printf("(unknown version)")
		}
		fmt.Println()
	},
}

// Execute runs the command line.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().BoolP("expr", "e", false, "expand $(...) expressions before lexing")
	rootCmd.PersistentFlags().StringArrayP("define", "D", []string{}, "define NAME=VALUE for expressions")
}
