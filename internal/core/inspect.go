package core

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// controlNames maps each Fingerprint control byte to the readable
// placeholder used in vendor examples and debugging output.
var controlNames = map[byte]string{
	0x02: "<STX>",
	0x03: "<ETX>",
	0x1b: "<ESC>",
	0x0a: "<LF>",
	0x1f: "<US>",
	0x17: "<ETB>",
	0x18: "<CAN>",
	0x0f: "<SI>",
}

// HumanReadable renders an encoded document with control bytes replaced by
// readable placeholders, one command per line. It never fails; bytes it
// does not recognize pass through unchanged. Use InspectDocument when the
// framing itself needs verifying.
func HumanReadable(doc []byte) string {
	var b strings.Builder
	b.Grow(len(doc) * 2)

	inCommand := false
	for _, c := range doc {
		switch {
		case c == 0x02:
			inCommand = true
			b.WriteString("<STX>")
		case c == 0x03:
			inCommand = false
			b.WriteString("<ETX>\n")
		case !inCommand && (c == '\r' || c == '\n'):
			// Separators between commands; a newline is already
			// emitted after every ETX.
		default:
			if name, ok := controlNames[c]; ok {
				b.WriteString(name)
			} else {
				b.WriteByte(c)
			}
		}
	}

	return b.String()
}

// DocumentInfo summarizes the structure of an encoded document.
type DocumentInfo struct {
	Commands       int         `json:"commands"`       // total STX/ETX commands
	HeaderCommands int         `json:"headerCommands"` // commands before the first block
	Blocks         []BlockInfo `json:"blocks"`         // one entry per print block
	TotalLabels    int         `json:"totalLabels"`    // sum of block copy counts
}

// BlockInfo describes one print block recovered from a document.
type BlockInfo struct {
	Barcode string `json:"barcode"` // value loaded into BR0
	Line1   string `json:"line1"`   // value loaded into TX3
	Line2   string `json:"line2"`   // value loaded into TX4
	Copies  int    `json:"copies"`  // copy count from the US command
	Fields  int    `json:"fields"`  // field assignments in the block
}

// splitCommands cuts a document into command bodies, checking the STX/ETX
// framing as it goes. Only CR and LF may appear between commands.
func splitCommands(doc []byte) ([]string, error) {
	var cmds []string
	i := 0
	for i < len(doc) {
		switch doc[i] {
		case '\r', '\n':
			i++
		case 0x02:
			j := bytes.IndexByte(doc[i+1:], 0x03)
			if j < 0 {
				return nil, fmt.Errorf("unterminated command at byte %d", i)
			}
			body := doc[i+1 : i+1+j]
			if bytes.IndexByte(body, 0x02) >= 0 {
				return nil, fmt.Errorf("nested command start at byte %d", i)
			}
			cmds = append(cmds, string(body))
			i += j + 2
		default:
			return nil, fmt.Errorf("stray byte 0x%02x outside command framing at byte %d", doc[i], i)
		}
	}
	return cmds, nil
}

// InspectDocument walks a document's command framing and recovers its
// structure: header length, per-block field values, and copy counts. It is
// strict about framing so tests and operators can use it as a verifier for
// anything about to be sent to a printer.
func InspectDocument(doc []byte) (*DocumentInfo, error) {
	cmds, err := splitCommands(doc)
	if err != nil {
		return nil, err
	}

	info := &DocumentInfo{Commands: len(cmds)}
	var block *BlockInfo
	seenBlock := false

	for n, body := range cmds {
		switch {
		case body == ctrlESC+"E1"+ctrlCAN:
			if block != nil {
				return nil, fmt.Errorf("command %d: block starts before previous block ended", n)
			}
			seenBlock = true
			block = &BlockInfo{}

		case block == nil:
			if seenBlock {
				return nil, fmt.Errorf("command %d: %q outside a block", n, body)
			}
			info.HeaderCommands++

		case strings.HasPrefix(body, ctrlESC+`F"`):
			rest := strings.TrimPrefix(body, ctrlESC+`F"`)
			q := strings.Index(rest, `"`)
			if q < 0 {
				return nil, fmt.Errorf("command %d: unterminated field name", n)
			}
			name, value := rest[:q], rest[q+1:]
			if !strings.HasPrefix(value, ctrlLF) {
				return nil, fmt.Errorf("command %d: field %s missing value separator", n, name)
			}
			value = strings.TrimPrefix(value, ctrlLF)
			block.Fields++
			switch name {
			case "BR0":
				block.Barcode = value
			case "TX3":
				block.Line1 = value
			case "TX4":
				block.Line2 = value
			}

		case strings.HasPrefix(body, ctrlUS):
			copies, err := strconv.Atoi(strings.TrimPrefix(body, ctrlUS))
			if err != nil {
				return nil, fmt.Errorf("command %d: bad copy count %q", n, strings.TrimPrefix(body, ctrlUS))
			}
			block.Copies = copies

		case body == ctrlETB:
			info.Blocks = append(info.Blocks, *block)
			info.TotalLabels += block.Copies
			block = nil

		default:
			return nil, fmt.Errorf("command %d: unexpected command %q inside block", n, body)
		}
	}

	if block != nil {
		return nil, fmt.Errorf("document ends inside an unterminated block")
	}

	return info, nil
}
