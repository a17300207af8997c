package core

import (
	"strconv"
	"strings"
)

// lineBreaks normalizes the line endings a clipboard can carry. Excel on
// Windows pastes CRLF, legacy Mac exports paste bare CR.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse reads pasted tab-delimited text into validated label records.
//
// The first non-empty line is the header; its cells are matched exactly
// (after cleaning) against the schema's column names. Data rows that cannot
// yield a valid record are skipped silently and reported in the result
// rather than failing the whole paste, because spreadsheet exports
// routinely carry ragged footer rows.
//
// A row is skipped when it has fewer cells than the highest required
// column index, when its code or description is empty after cleaning, or
// when its quantity cell fails the schema's quantity rule.
//
// Record ids are drawn from ids, so repeated parses into the same session
// never collide.
func Parse(rawText string, schema InputSchema, ids *IDSequence) (*ParseResult, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	rawText = string(sanitizeUTF8([]byte(rawText)))

	type numberedLine struct {
		number int // 1-based position in the paste
		text   string
	}

	var lines []numberedLine
	for i, line := range strings.Split(lineBreaks.Replace(rawText), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, numberedLine{number: i + 1, text: line})
	}

	if len(lines) < 2 {
		return nil, ErrInsufficientRows
	}

	header := strings.Split(lines[0].text, "\t")
	headerIdx := make(map[string]int, len(header))
	for i, cell := range header {
		name := CleanField(cell)
		if _, dup := headerIdx[name]; !dup {
			headerIdx[name] = i
		}
	}

	// Required columns are checked in a fixed order so the error names
	// the same column every time.
	required := []string{schema.CodeColumn, schema.DescriptionColumn, schema.QuantityColumn}
	maxIdx := 0
	for _, col := range required {
		idx, ok := headerIdx[col]
		if !ok {
			return nil, &MissingColumnError{Column: col}
		}
		if idx > maxIdx {
			maxIdx = idx
		}
	}

	codeIdx := headerIdx[schema.CodeColumn]
	descIdx := headerIdx[schema.DescriptionColumn]
	qtyIdx := headerIdx[schema.QuantityColumn]
	rule := schema.rule()

	result := &ParseResult{}
	skip := func(line numberedLine) {
		result.Skipped++
		result.SkippedLines = append(result.SkippedLines, line.number)
	}

	for _, line := range lines[1:] {
		result.DataRows++

		cells := strings.Split(line.text, "\t")
		if len(cells) <= maxIdx {
			skip(line)
			continue
		}

		code := strings.TrimSpace(cells[codeIdx])
		desc := CleanField(cells[descIdx])
		if code == "" || desc == "" {
			skip(line)
			continue
		}

		qty, err := strconv.Atoi(strings.TrimSpace(cells[qtyIdx]))
		switch rule {
		case QuantityLenient:
			if err != nil {
				qty = 0
			}
		default:
			if err != nil || qty <= 0 {
				skip(line)
				continue
			}
		}
		if qty < 0 {
			skip(line)
			continue
		}

		result.Records = append(result.Records, LabelRecord{
			ID:          ids.Next(),
			Code:        code,
			Description: desc,
			Quantity:    qty,
		})
	}

	if len(result.Records) == 0 {
		return nil, ErrNoValidRows
	}

	return result, nil
}
