package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two major.minor.patch versions, with or without a leading v.
// A pre-release or build suffix after the patch number is ignored.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var parsed [3]int

	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(trimmed, "-+"); i >= 0 {
		trimmed = trimmed[:i]
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 3 {
		return parsed, fmt.Errorf("invalid version %q", s)
	}

	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return parsed, fmt.Errorf("invalid version %q", s)
		}
		parsed[i] = n
	}

	return parsed, nil
}
