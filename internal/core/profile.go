package core

import "fmt"

// Layout selects how many print positions one block fills.
type Layout string

const (
	// LayoutTriple prints three identical labels per block, the full
	// width of PM42 label stock.
	LayoutTriple Layout = "triple"
	// LayoutSingle prints one label per block.
	LayoutSingle Layout = "single"
)

// QuantityPolicy selects how a record's quantity maps onto print blocks.
type QuantityPolicy string

const (
	// PolicySplit emits a main block for quantity-1 copies plus a
	// residual block for the last label, so the operator can stop the
	// printer between the bulk run and the final copy.
	PolicySplit QuantityPolicy = "split"
	// PolicyExact emits a single block with the exact quantity.
	PolicyExact QuantityPolicy = "exact"
)

// LineTermination selects how encoded commands are joined.
type LineTermination string

const (
	// TermNone concatenates commands with no separator. The printer
	// only needs the STX/ETX framing.
	TermNone LineTermination = "none"
	// TermCRLF joins commands with CRLF so the document is
	// line-per-command when opened in an editor.
	TermCRLF LineTermination = "crlf"
)

// FormatProfile describes how records are rendered into a printer document.
// Profiles are registered at init time and looked up by key.
type FormatProfile struct {
	Key             string          `json:"key"`             // Unique identifier: "pm42-triple-split"
	Label           string          `json:"label"`           // Display name
	Layout          Layout          `json:"layout"`          // Print positions per block
	QuantityPolicy  QuantityPolicy  `json:"quantityPolicy"`  // Block emission strategy
	LineTermination LineTermination `json:"lineTermination"` // Command join mode
	TextWidth       int             `json:"textWidth"`       // Max runes per text line, 0 means DefaultTextWidth
}

// Validate checks that the profile's axes hold known values. The encoder
// refuses inconsistent profiles rather than emitting a document the printer
// would misrender.
func (p FormatProfile) Validate() error {
	switch p.Layout {
	case LayoutTriple, LayoutSingle:
	default:
		return &ProfileMismatchError{Profile: p.Key, Reason: fmt.Sprintf("unknown layout %q", p.Layout)}
	}
	switch p.QuantityPolicy {
	case PolicySplit, PolicyExact:
	default:
		return &ProfileMismatchError{Profile: p.Key, Reason: fmt.Sprintf("unknown quantity policy %q", p.QuantityPolicy)}
	}
	switch p.LineTermination {
	case TermNone, TermCRLF:
	default:
		return &ProfileMismatchError{Profile: p.Key, Reason: fmt.Sprintf("unknown line termination %q", p.LineTermination)}
	}
	if p.TextWidth < 0 {
		return &ProfileMismatchError{Profile: p.Key, Reason: fmt.Sprintf("negative text width %d", p.TextWidth)}
	}
	return nil
}

// textWidth returns the effective wrap width.
func (p FormatProfile) textWidth() int {
	if p.TextWidth <= 0 {
		return DefaultTextWidth
	}
	return p.TextWidth
}

func init() {
	// The production profile: the full label stock layout as the shop
	// floor printers run it.
	RegisterProfile(FormatProfile{
		Key:             "pm42-triple-split",
		Label:           "PM42 triple layout, split last label",
		Layout:          LayoutTriple,
		QuantityPolicy:  PolicySplit,
		LineTermination: TermNone,
		TextWidth:       DefaultTextWidth,
	})

	// Single-position stock with exact quantities, used for narrow rolls.
	RegisterProfile(FormatProfile{
		Key:             "pm42-single-exact",
		Label:           "PM42 single layout, exact quantities",
		Layout:          LayoutSingle,
		QuantityPolicy:  PolicyExact,
		LineTermination: TermNone,
		TextWidth:       DefaultTextWidth,
	})

	// Debugging profile: same blocks as production but CRLF-joined so
	// the output diffs cleanly in an editor.
	RegisterProfile(FormatProfile{
		Key:             "pm42-preview",
		Label:           "PM42 triple layout, editor friendly",
		Layout:          LayoutTriple,
		QuantityPolicy:  PolicySplit,
		LineTermination: TermCRLF,
		TextWidth:       DefaultTextWidth,
	})
}
