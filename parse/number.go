package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jval/stream"
	"github.com/signadot/jval/value"
)

// number delivers the JSON number literal s to h.
func number(s string, h stream.Handler) error {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return h.Int64(i, value.NoTag)
		}
		if !strings.HasPrefix(s, "-") {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return h.Uint64(u, value.NoTag)
			}
		}
		return h.String(s, value.Bigint)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return h.String(s, value.Bigdec)
		}
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	return h.Double(f, value.NoTag)
}
