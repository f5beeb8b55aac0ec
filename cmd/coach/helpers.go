// ABOUTME: Shared CLI helpers for formatting and interactive prompts.
// ABOUTME: Used across command files.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %02ds", seconds/60, seconds%60)
}

// promptLine reads one trimmed line from stdin, showing a prompt with an
// optional default value.
func promptLine(reader *bufio.Reader, prompt, defaultValue string) string {
	if defaultValue != "" {
		fmt.Printf("%s [%s]: ", prompt, defaultValue)
	} else {
		fmt.Printf("%s: ", prompt)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return defaultValue
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue
	}
	return line
}

func stdinReader() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
}
