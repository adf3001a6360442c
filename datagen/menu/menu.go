// Package menu runs the interactive create/exit loop over line-oriented input.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"datagen.arpa/datagen/datafile"
	"go.uber.org/zap"
)

const (
	ChoiceCreate = "1"
	ChoiceExit   = "2"

	MenuText = "\n1. Create new data file\n2. Exit\n"

	promptChoice   = "Enter your choice: "
	promptDataType = "Enter data type (i for integer, f for float): "
	promptCount    = "Enter number of elements: "
	promptFilename = "Enter filename: "
)

var (
	ErrInvalidMenuChoice = errors.New("invalid choice")
	ErrInputClosed       = errors.New("input closed")
)

// CreateFunc generates and writes the file described by a request.
type CreateFunc func(ctx context.Context, req datafile.Request) (datafile.Result, error)

type Menu struct {
	log    *zap.Logger
	in     *bufio.Reader
	out    io.Writer
	create CreateFunc
}

func NewMenu(log *zap.Logger, in io.Reader, out io.Writer, create CreateFunc) *Menu {
	return &Menu{
		log:    log,
		in:     bufio.NewReader(in),
		out:    out,
		create: create,
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// Invalid input and failed writes are reported and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, MenuText)
		line, err := m.prompt(promptChoice)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case ChoiceCreate:
			if err := m.createFile(ctx); err != nil {
				return err
			}
		case ChoiceExit:
			fmt.Fprintln(m.out, "Program terminated.")
			return nil
		default:
			m.log.Debug("Rejected menu choice.", zap.String("input", line), zap.Error(ErrInvalidMenuChoice))
			fmt.Fprintln(m.out, "Invalid choice!")
		}
	}
}

// createFile runs one collect, generate and write pass.
// Only input failures are returned; write failures are reported to the user.
func (m *Menu) createFile(ctx context.Context) error {
	req, err := m.collect()
	if err != nil {
		return err
	}

	res, err := m.create(ctx, req)
	if err != nil {
		fmt.Fprintf(m.out, "Error creating file: %v\n", err)
		return nil
	}
	m.log.Debug("Created data file.", zap.String("request_id", req.ID), zap.String("path", res.Path))
	fmt.Fprintln(m.out, "File created successfully!")
	return nil
}

// prompt writes the prompt and reads one line of input of any length.
// A final line without a newline is still returned.
func (m *Menu) prompt(text string) (string, error) {
	fmt.Fprint(m.out, text)
	line, err := m.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		fmt.Fprintln(m.out)
		return "", ErrInputClosed
	}
	return strings.TrimRight(line, "\r\n"), nil
}
