package chess2

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the tunable knobs for a game session. LoadConfig starts
// from DefaultConfig's values; fields absent from the file keep them.
type Config struct {
	NodesPerMove int   `toml:"nodes_per_move"`
	WhiteArmy    Army  `toml:"white_army"`
	BlackArmy    Army  `toml:"black_army"`
}

// DefaultConfig mirrors the constants baked into the reference engine:
// a search budget of 10000 nodes per move and both sides starting as
// Classic armies.
func DefaultConfig() Config {
	return Config{
		NodesPerMove: 10_000,
		WhiteArmy:    Classic,
		BlackArmy:    Classic,
	}
}

// LoadConfig reads a TOML config file at path, falling back silently
// to DefaultConfig when the file does not exist. Any other read or
// parse error is returned to the caller.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
