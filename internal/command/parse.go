package command

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing float from %s", ErrInvalidArgument, s)
	}
	return f, nil
}

// parseIndex accepts only non-negative integers.
func parseIndex(s string) (int, error) {
	i, err := strconv.ParseUint(s, 10, 0)
	if err != nil || i > uint64(maxInt) {
		return 0, fmt.Errorf("%w: error parsing index from %s", ErrInvalidArgument, s)
	}
	return int(i), nil
}

const maxInt = int(^uint(0) >> 1)

// parseFloats parses every argument as a float.
func parseFloats(args ...string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}
