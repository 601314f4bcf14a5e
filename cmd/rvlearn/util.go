package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/rvlearn/source"
)

// GetFlag gets an expected boolean flag, or exits.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or exits.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or exits.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseDefines converts NAME=VALUE items into expression definitions.
func parseDefines(items []string) (define map[string]int, err error) {
	define = make(map[string]int, len(items))

	for _, item := range items {
		name, value, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			err = fmt.Errorf("malformed definition %q", item)
			return
		}

		var n int
		n, err = strconv.Atoi(value)
		if err != nil {
			err = fmt.Errorf("malformed definition %q: %w", item, err)
			return
		}

		define[name] = n
	}

	return
}

// loadProgram reads and lexes a program file using the shared flags.
func loadProgram(cmd *cobra.Command, path string) (prog source.Program, err error) {
	opts := source.Options{
		Verbose:     GetFlag(cmd, "verbose"),
		Expressions: GetFlag(cmd, "expr"),
	}

	opts.Define, err = parseDefines(GetStringArray(cmd, "define"))
	if err != nil {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = source.Load(inf, opts)
	return
}
