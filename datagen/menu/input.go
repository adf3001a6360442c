package menu

import (
	"fmt"

	"datagen.arpa/datagen/datafile"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// collect reads the data type, count and filename, re-prompting on invalid input.
func (m *Menu) collect() (datafile.Request, error) {
	kind, err := readValid(m, promptDataType, datafile.ParseKind, func(string) string {
		return "Invalid data type: must be i (integer) or f (float)"
	})
	if err != nil {
		return datafile.Request{}, err
	}
	count, err := readValid(m, promptCount, datafile.ParseCount, func(input string) string {
		return fmt.Sprintf("Invalid number: %q is not a positive whole number", input)
	})
	if err != nil {
		return datafile.Request{}, err
	}
	filename, err := readValid(m, promptFilename, datafile.ParseFilename, func(string) string {
		return "Filename must not be empty"
	})
	if err != nil {
		return datafile.Request{}, err
	}

	req := datafile.Request{
		ID:       uuid.NewString(),
		Kind:     kind,
		Count:    count,
		Filename: filename,
	}
	m.log.Debug("Collected request.",
		zap.String("request_id", req.ID),
		zap.Stringer("kind", req.Kind),
		zap.Uint64("count", req.Count),
		zap.String("filename", req.Filename),
	)
	return req, nil
}

// readValid prompts until parse accepts the input. Only input failures are returned.
func readValid[T any](m *Menu, prompt string, parse func(string) (T, error), reject func(string) string) (T, error) {
	for {
		line, err := m.prompt(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		m.log.Debug("Rejected input.", zap.String("prompt", prompt), zap.Error(err))
		fmt.Fprintln(m.out, reject(line))
	}
}
