package schemas

import (
	"github.com/JonMunkholm/labelgen/internal/core"
)

func init() {
	registerPlain()
}

// registerPlain covers hand-built spreadsheets with English headers.
// Quantities are lenient: rows without a count default to zero so the
// user can fill quantities in afterwards instead of losing the row.
func registerPlain() {
	core.RegisterSchema(core.InputSchema{
		Key:               "plain",
		Label:             "Plain spreadsheet (English)",
		CodeColumn:        "Item Code",
		DescriptionColumn: "Description",
		QuantityColumn:    "Label Quantity",
		Rule:              core.QuantityLenient,
	})
}
