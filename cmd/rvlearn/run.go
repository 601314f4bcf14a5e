package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/rvlearn/interp"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.s",
	Short: "run an assembly program.",
	Long: `Run an assembly program to completion and print the final register file.
	 Snapshots of registers and memory can be printed after every step.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, err := loadProgram(cmd, args[0])
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(1)
		}

		options := interp.DefaultOptions()
		options.EnforceGlobalDirective = GetFlag(cmd, "global")
		options.MemorySize = GetInt(cmd, "memory")
		options.PrintMode = interp.PrintMode(GetInt(cmd, "print"))

		in := interp.New(prog, options)
		in.Verbose = GetFlag(cmd, "verbose")
		in.Output = cmd.OutOrStdout()

		limit := GetInt(cmd, "max-steps")
		for !in.Done() {
			if limit > 0 && in.Steps() >= limit {
				log.Warnf("%v: stopped after %d steps", args[0], in.Steps())
				break
			}
			if _, err = in.Step(); err != nil {
				log.Errorf("%v: %v", args[0], err)
				os.Exit(1)
			}
		}

		regs := in.Registers()
		fmt.Fprintf(cmd.OutOrStdout(), "registers: %v\n", regs.String())
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(runCmd)
	defaults := interp.DefaultOptions()
	runCmd.Flags().Bool("global", defaults.EnforceGlobalDirective, "require '.global <label>' on the first line")
	runCmd.Flags().IntP("memory", "m", defaults.MemorySize, "memory size in bytes")
	runCmd.Flags().IntP("print", "p", int(defaults.PrintMode), "print after each step: 0 none, 1 registers, 2 memory, 3 both")
	runCmd.Flags().Int("max-steps", 0, "stop after this many steps (0 for no limit)")
}
