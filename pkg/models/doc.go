// Package models provides the data shapes shared by the scanner, the
// convention checker and the report renderers.
//
// # Files and symbols
//
// A [FileEntry] describes one file of a front-end source tree: its
// slash-separated path relative to the scan root, its [FileKind], and the
// [ExportedSymbol] values it declares. Re-export statements are kept apart
// in [ReExport] values because barrel files are judged on them.
//
//	entry := models.FileEntry{
//	    Path: "src/components/order-card.tsx",
//	    Kind: models.KindComponent,
//	    Symbols: []models.ExportedSymbol{
//	        {Name: "OrderCard", Kind: models.SymbolComponent},
//	    },
//	}
//
// # Violations
//
// A [Violation] references exactly one file and one [RuleID].
package models
