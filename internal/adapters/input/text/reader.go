package text

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/stonesplit/internal/domain"
	"github.com/bnema/stonesplit/internal/ports"
)

const maxLineBytes = 1 << 20

var lineRegex = regexp.MustCompile(`^(\d+)\s*\[([^\]]*)\]$`)

type Reader struct{}

var _ ports.PileSource = Reader{}

func (Reader) ReadPiles(ctx context.Context, path string) ([]domain.PileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer file.Close()

	return Parse(ctx, file)
}

// Parse reads "<size> [d1,d2,...]" records. Blank lines and lines starting
// with '#' are skipped; every other line yields one record. A line longer
// than maxLineBytes yields a malformed record and parsing continues.
func Parse(ctx context.Context, r io.Reader) ([]domain.PileRecord, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var records []domain.PileRecord
	lineNumber := 0
	for {
		raw, truncated, readErr := readLine(br, maxLineBytes)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read input line %d: %w", lineNumber+1, readErr)
		}
		if errors.Is(readErr, io.EOF) && len(raw) == 0 && !truncated {
			break
		}

		lineNumber++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if truncated {
			records = append(records, domain.PileRecord{
				Line: lineNumber,
				Raw:  previewLine(raw),
				Err:  fmt.Errorf("%w: line exceeds %d bytes", domain.ErrMalformedRecord, maxLineBytes),
			})
		} else if line := strings.TrimSpace(string(raw)); line != "" && !strings.HasPrefix(line, "#") {
			pile, err := ParseLine(line)
			records = append(records, domain.PileRecord{
				Line: lineNumber,
				Raw:  line,
				Pile: pile,
				Err:  err,
			})
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	return records, nil
}

// readLine returns the next line without its newline, keeping at most limit
// bytes. The rest of an over-long line is consumed and truncated is set.
func readLine(br *bufio.Reader, limit int) ([]byte, bool, error) {
	var line []byte
	truncated := false
	for {
		chunk, err := br.ReadSlice('\n')
		content := chunk
		if err == nil {
			content = chunk[:len(chunk)-1]
		}

		if room := limit - len(line); len(content) > room {
			line = append(line, content[:max(room, 0)]...)
			truncated = true
		} else {
			line = append(line, content...)
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return line, truncated, err
	}
}

func previewLine(raw []byte) string {
	const previewBytes = 64
	line := strings.TrimSpace(string(raw[:min(len(raw), previewBytes)]))
	if len(raw) > previewBytes {
		line += "..."
	}
	return line
}

func ParseLine(line string) (domain.PileSpec, error) {
	match := lineRegex.FindStringSubmatch(strings.TrimSpace(line))
	if match == nil {
		return domain.PileSpec{}, fmt.Errorf("%w: expected 'number [x,y,z,...]'", domain.ErrMalformedRecord)
	}

	size, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return domain.PileSpec{}, fmt.Errorf("%w: invalid pile size %q", domain.ErrMalformedRecord, match[1])
	}

	divisors, err := parseDivisors(match[2])
	if err != nil {
		return domain.PileSpec{}, err
	}

	return domain.NewPileSpec(size, divisors)
}

func parseDivisors(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	divisors := make([]int64, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}

		value, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid divisor %q", domain.ErrMalformedRecord, trimmed)
		}
		divisors = append(divisors, value)
	}

	return divisors, nil
}
