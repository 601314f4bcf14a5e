package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [flags] program.s",
	Short: "print the tokens of an assembly program.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prog, err := loadProgram(cmd, args[0])
		if err != nil {
			log.Errorf("%v: %v", args[0], err)
			os.Exit(1)
		}

		for _, line := range prog {
			if len(line) == 0 {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", line[0].Line, line)
		}
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
