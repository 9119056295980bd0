package players

import _ "embed"

// seedJSON contains the embedded player reference data.
//
//go:embed seed/players.json
var seedJSON []byte
