// Package core provides the business logic for thermal label generation.
//
// This package is the heart of the label generator, containing all domain
// logic independent of any UI or transport layer. It can be used by web
// handlers, CLI tools, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Input Schemas: Registered via the registry, each schema names the
//     column headers the parser should look for and how to read quantities.
//   - Format Profiles: Registered via the registry, each profile describes
//     how records are rendered into a printer document.
//   - Service: The main entry point for session-based workflows (parse,
//     edit, encode).
//
// # Registries
//
// Schemas and profiles are registered at init time using [RegisterSchema]
// and [RegisterProfile]. Each [InputSchema] names the headers for one
// source system:
//
//	core.RegisterSchema(InputSchema{
//	    Key:               "plain",
//	    Label:             "Plain export",
//	    CodeColumn:        "Item Code",
//	    DescriptionColumn: "Description",
//	    QuantityColumn:    "Label Quantity",
//	})
//
// # Pipeline
//
// The conversion pipeline has three pure stages:
//
//  1. [Parse] turns pasted tab-delimited text into validated [LabelRecord]s.
//  2. [WrapDescription] splits a description into the two lines a label
//     has room for.
//  3. [EncodeDocument] renders records into the byte-exact command stream
//     the printer consumes, according to a [FormatProfile].
//
// Each stage is deterministic and side-effect free. [Service] composes them
// on top of an in-memory session store for interactive callers.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - PARSE001-PARSE004: Parse errors (missing rows, missing columns)
//   - REC001-REC003: Record errors (not found, invalid quantity)
//   - PROF001-PROF002, SCH001: Registry lookups and profile mismatches
//   - SES001-SES002: Session errors (expired, record limit)
//
// # Document Inspection
//
// Encoded documents are binary. [HumanReadable] renders one with control
// bytes replaced by readable placeholders, and [InspectDocument] walks the
// command framing to recover per-block structure for verification.
package core
