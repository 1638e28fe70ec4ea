package cli

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// valueKind converts between user input and one memory value type.
type valueKind struct {
	size   int
	parse  func(string) (uint64, error)
	format func(uint64) string
}

// Values travel as their raw bits so that every kind shares one signature.
var valueKinds = map[string]valueKind{
	"int8":    signedKind(8),
	"int16":   signedKind(16),
	"int32":   signedKind(32),
	"int64":   signedKind(64),
	"uint8":   unsignedKind(8),
	"uint16":  unsignedKind(16),
	"uint32":  unsignedKind(32),
	"uint64":  unsignedKind(64),
	"ptr":     pointerKind(),
	"float32": float32Kind(),
	"float64": float64Kind(),
}

func valueKindNames() string {
	names := make([]string, 0, len(valueKinds))
	for name := range valueKinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func lookupKind(name string) (valueKind, error) {
	kind, ok := valueKinds[name]
	if !ok {
		return valueKind{}, fmt.Errorf("unsupported type %q (want one of %s)", name, valueKindNames())
	}
	return kind, nil
}

func signedKind(bits int) valueKind {
	return valueKind{
		size: bits / 8,
		parse: func(s string) (uint64, error) {
			v, err := strconv.ParseInt(s, 0, bits)
			if err != nil {
				return 0, parseNumericError(fmt.Sprintf("int%d", bits), s, err)
			}
			return uint64(v), nil
		},
		format: func(raw uint64) string {
			shift := 64 - bits
			return strconv.FormatInt(int64(raw<<shift)>>shift, 10)
		},
	}
}

func unsignedKind(bits int) valueKind {
	return valueKind{
		size: bits / 8,
		parse: func(s string) (uint64, error) {
			v, err := strconv.ParseUint(s, 0, bits)
			if err != nil {
				return 0, parseNumericError(fmt.Sprintf("uint%d", bits), s, err)
			}
			return v, nil
		},
		format: func(raw uint64) string {
			return strconv.FormatUint(raw, 10)
		},
	}
}

func pointerKind() valueKind {
	kind := unsignedKind(64)
	kind.size = strconv.IntSize / 8
	kind.format = func(raw uint64) string {
		return fmt.Sprintf("0x%X", raw)
	}
	return kind
}

func float32Kind() valueKind {
	return valueKind{
		size: 4,
		parse: func(s string) (uint64, error) {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return 0, parseNumericError("float32", s, err)
			}
			return uint64(math.Float32bits(float32(v))), nil
		},
		format: func(raw uint64) string {
			return strconv.FormatFloat(float64(math.Float32frombits(uint32(raw))), 'g', -1, 32)
		},
	}
}

func float64Kind() valueKind {
	return valueKind{
		size: 8,
		parse: func(s string) (uint64, error) {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, parseNumericError("float64", s, err)
			}
			return math.Float64bits(v), nil
		},
		format: func(raw uint64) string {
			return strconv.FormatFloat(math.Float64frombits(raw), 'g', -1, 64)
		},
	}
}

func parseNumericError(dtype, valStr string, err error) error {
	var nerr *strconv.NumError
	if errors.As(err, &nerr) {
		switch {
		case errors.Is(nerr.Err, strconv.ErrRange):
			return fmt.Errorf("invalid %s: value out of range", dtype)
		case errors.Is(nerr.Err, strconv.ErrSyntax):
			return fmt.Errorf("invalid %s: enter a %s value (got %q)", dtype, dtype, valStr)
		}
	}

	return fmt.Errorf("invalid %s: %v", dtype, err)
}

func parsePID(s string) (uint32, error) {
	pid, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, parseNumericError("pid", s, err)
	}
	if pid == 0 {
		return 0, errors.New("invalid pid: must not be 0")
	}
	return uint32(pid), nil
}

func parseAddress(s string) (uintptr, error) {
	addr, err := strconv.ParseUint(s, 0, strconv.IntSize)
	if err != nil {
		return 0, parseNumericError("address", s, err)
	}
	return uintptr(addr), nil
}
