// Package datafile generates random values and writes them to count-prefixed text files.
package datafile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Kind int

const (
	KindInteger Kind = iota
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Largest count accepted for a single file.
const MaxCount = 1<<32 - 1

var (
	ErrInvalidDataType = errors.New("invalid data type")
	ErrInvalidCount    = errors.New("invalid number")
	ErrEmptyFilename   = errors.New("filename must not be empty")
)

// Request describes one generation-and-write operation.
type Request struct {
	ID       string // Correlates log lines, never written to the file
	Kind     Kind
	Count    uint64
	Filename string
}

// NewRequest validates raw input and returns a Request with a fresh ID.
func NewRequest(kind, count, filename string) (Request, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return Request{}, err
	}
	n, err := ParseCount(count)
	if err != nil {
		return Request{}, err
	}
	f, err := ParseFilename(filename)
	if err != nil {
		return Request{}, err
	}
	return Request{ID: uuid.NewString(), Kind: k, Count: n, Filename: f}, nil
}

// ParseKind accepts "i" or "f" in either case.
func ParseKind(input string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "i":
		return KindInteger, nil
	case "f":
		return KindFloat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDataType, strings.TrimSpace(input))
	}
}

// ParseCount accepts a base-10 integer in [1, MaxCount].
func ParseCount(input string) (uint64, error) {
	s := strings.TrimSpace(input)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, s)
	}
	return n, nil
}

func ParseFilename(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrEmptyFilename
	}
	return s, nil
}
