package cli

import (
	"fmt"
	"strconv"
	"strings"
)

func parseID(s, kind string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %q", kind, s)
	}
	return id, nil
}
