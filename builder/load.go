// load.go - plain-text point files.
package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antour/antour/core"
)

const methodLoadPoints = "LoadPoints"

// Expected fields per record: id x y weight.
const (
	recordFieldsFull = 4
	recordFieldsBare = 3 // weight omitted, defaults to 0
)

// LoadPoints reads whitespace-separated point records from r, one per line:
//
//	<id> <x> <y> [weight]
//
// Blank lines and lines starting with '#' are skipped. The weight field is
// optional and defaults to 0. Returns ErrBadRecord (with the line number in
// the wrap) on any malformed line.
//
// Complexity: O(lines).
func LoadPoints(r io.Reader) ([]Point, error) {
	var pts []Point

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != recordFieldsFull && len(fields) != recordFieldsBare {
			return nil, fmt.Errorf("%s: line %d: want %d or %d fields, got %d: %w",
				methodLoadPoints, line, recordFieldsBare, recordFieldsFull, len(fields), ErrBadRecord)
		}

		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: x %q: %w", methodLoadPoints, line, fields[1], ErrBadRecord)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: y %q: %w", methodLoadPoints, line, fields[2], ErrBadRecord)
		}

		var weight int64
		if len(fields) == recordFieldsFull {
			weight, err = strconv.ParseInt(fields[3], 10, 64)
			if err != nil || weight < 0 {
				return nil, fmt.Errorf("%s: line %d: weight %q: %w", methodLoadPoints, line, fields[3], ErrBadRecord)
			}
		}

		pts = append(pts, Point{ID: fields[0], X: x, Y: y, Weight: weight})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodLoadPoints, err)
	}

	return pts, nil
}

// FromReader composes LoadPoints and FromPoints: parse r, then register
// and fully connect the parsed points.
func FromReader(r io.Reader) Constructor {
	return func(g *core.Graph, cfg buildConfig) error {
		pts, err := LoadPoints(r)
		if err != nil {
			return err
		}

		return FromPoints(pts)(g, cfg)
	}
}
