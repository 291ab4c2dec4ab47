package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// terminalConfirmer asks destructive-action questions on the command's
// streams. With auto set it approves without prompting (the --yes flag).
type terminalConfirmer struct {
	cmd      *cobra.Command
	auto     bool
	declined bool
}

func newTerminalConfirmer(cmd *cobra.Command, auto bool) *terminalConfirmer {
	return &terminalConfirmer{cmd: cmd, auto: auto}
}

// Confirm prompts y/N and treats anything but an explicit yes as a
// cancellation.
func (c *terminalConfirmer) Confirm(prompt string) (bool, error) {
	if c.auto {
		return true, nil
	}
	fmt.Fprintf(c.cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(c.cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		c.declined = true
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer == "y" || answer == "yes" {
		return true, nil
	}
	c.declined = true
	return false, nil
}
