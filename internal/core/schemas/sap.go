package schemas

import (
	"github.com/JonMunkholm/labelgen/internal/core"
)

func init() {
	registerSAPSpanish()
}

// registerSAPSpanish covers the SAP article list export the warehouse
// pastes from. Headers are the Spanish column names exactly as SAP emits
// them; quantities are strict because a row without a usable count is
// noise from the export footer.
func registerSAPSpanish() {
	core.RegisterSchema(core.InputSchema{
		Key:               "sap-es",
		Label:             "SAP article export (Spanish)",
		CodeColumn:        "Número de artículo",
		DescriptionColumn: "Descripción del artículo",
		QuantityColumn:    "Cantidad de Etiquetas",
		Rule:              core.QuantityStrict,
	})
}
