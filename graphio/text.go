package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Read parses the plain-text format. Blank lines are skipped; any other
// deviation is reported as ErrMalformed with the 1-based line number.
func Read(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)

	var doc *Document
	for line := 1; scanner.Scan(); line++ {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		if doc == nil {
			if len(parts) != 1 {
				return nil, fmt.Errorf("%w: line %d: want vertex count, got %d fields", ErrMalformed, line, len(parts))
			}
			n, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: vertex count: %v", ErrMalformed, line, err)
			}
			doc = &Document{Order: n}
			continue
		}

		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: want \"u v w\", got %d fields", ErrMalformed, line, len(parts))
		}
		from, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		to, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		w, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		doc.Edges = append(doc.Edges, EdgeSpec{From: from, To: to, Weight: w})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformed)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Write emits doc in the plain-text format. Errand queries have no text
// representation and are not written.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", doc.Order); err != nil {
		return err
	}
	for _, e := range doc.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}
