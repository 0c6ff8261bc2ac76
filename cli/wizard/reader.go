package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gentem/gentem/cli/util"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// Reader interface is used for reading user input.
type Reader interface {
	// readLine reads a line. defaultValue is shown as a hint.
	readLine(label, defaultValue string) (string, error)
	// selectItem returns an index of the chosen item.
	selectItem(label string, items []string, defaultIndex int) (int, error)
}

// consoleReader implements reading from a non-terminal input.
type consoleReader struct {
	stdinReader *bufio.Reader
	out         io.Writer
}

// readLine reads line from console. New-line symbol is trimmed.
func (consoleReader consoleReader) readLine(label, defaultValue string) (string, error) {
	if defaultValue == "" {
		fmt.Fprintf(consoleReader.out, "%s: ", label)
	} else {
		fmt.Fprintf(consoleReader.out, "%s (default: %s): ", label, defaultValue)
	}
	input, err := consoleReader.stdinReader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", fmt.Errorf("error getting user input: %s", err)
	}
	return strings.TrimSpace(input), nil
}

// selectItem prints numbered items and reads the chosen number. Empty input selects
// the default item.
func (consoleReader consoleReader) selectItem(label string, items []string,
	defaultIndex int,
) (int, error) {
	for i, item := range items {
		fmt.Fprintf(consoleReader.out, "  %d) %s\n", i+1, item)
	}
	for {
		input, err := consoleReader.readLine(label, items[defaultIndex])
		if err != nil {
			return 0, err
		}
		if input == "" {
			return defaultIndex, nil
		}
		if number, err := strconv.Atoi(input); err == nil && number >= 1 &&
			number <= len(items) {
			return number - 1, nil
		}
		for i, item := range items {
			if strings.EqualFold(input, item) {
				return i, nil
			}
		}
		fmt.Fprintf(consoleReader.out, "Please enter a number from 1 to %d.\n", len(items))
	}
}

// NewConsoleReader creates a reader of plain text input.
func NewConsoleReader(in io.Reader, out io.Writer) Reader {
	return consoleReader{stdinReader: bufio.NewReader(in), out: out}
}

// promptReader implements reading from a terminal using interactive prompts.
type promptReader struct{}

// promptError converts prompt cancellation to abort.
func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return util.ErrCmdAbort
	}
	return err
}

func (promptReader) readLine(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	input, err := prompt.Run()
	if err != nil {
		return "", promptError(err)
	}
	return strings.TrimSpace(input), nil
}

func (promptReader) selectItem(label string, items []string, defaultIndex int) (int, error) {
	itemSelect := promptui.Select{
		Label:        label,
		Items:        items,
		CursorPos:    defaultIndex,
		HideSelected: true,
	}
	index, _, err := itemSelect.Run()
	if err != nil {
		return 0, promptError(err)
	}
	return index, nil
}

// NewReader returns an interactive prompt reader if stdin is a terminal. Plain console
// reader is used otherwise.
func NewReader() Reader {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return promptReader{}
	}
	return NewConsoleReader(os.Stdin, os.Stdout)
}
