package config

import "time"

type Smiles struct {
	APIURL   string        `env:"SMILES_API_URL" envDefault:"https://api-air-flightsearch-blue.smiles.com.br/v1/airlines/search" validate:"url"`
	APIToken string        `env:"SMILES_API_TOKEN"`
	Timeout  time.Duration `env:"SMILES_TIMEOUT" envDefault:"30s"`

	// DebugHTTP dumps full requests/responses to the log.
	DebugHTTP bool `env:"SMILES_DEBUG_HTTP" envDefault:"false"`

	// DumpDir, when set, receives a CSV snapshot of every cycle's offers.
	DumpDir string `env:"SMILES_DUMP_DIR"`
}
