package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func readFiles(names []string) ([][]byte, error) {
	out := make([][]byte, len(names))
	for i, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func writeFiles(names []string, contents [][]byte) error {
	for i, name := range names {
		if err := os.WriteFile(name, contents[i], 0600); err != nil {
			return err
		}
	}
	return nil
}

func withSuffix(names []string, suffix string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name + suffix
	}
	return out
}

func trimSuffix(names []string, suffix string) ([]string, error) {
	out := make([]string, len(names))
	for i, name := range names {
		if !strings.HasSuffix(name, suffix) || len(name) == len(suffix) {
			return nil, fmt.Errorf("%s: expected a %s file", name, suffix)
		}
		out[i] = strings.TrimSuffix(name, suffix)
	}
	return out, nil
}

func printWritten(cmd *cobra.Command, names []string) {
	for _, name := range names {
		fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓")+" wrote "+color.YellowString(name))
	}
}
