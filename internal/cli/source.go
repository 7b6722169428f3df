package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cruzr/cruzr/internal/catalog"
	"github.com/cruzr/cruzr/internal/database"
)

// SourceBuiltin selects the compiled-in session catalog.
const SourceBuiltin = "builtin"

// OpenCatalog builds the session store from source: "builtin" (or empty),
// a YAML catalog file or a seeded sqlite database.
func OpenCatalog(ctx context.Context, source string) (*catalog.Store, error) {
	vehicles, err := readSource(ctx, source)
	if err != nil {
		return nil, err
	}
	store, err := catalog.NewStore(vehicles)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", displaySource(source), err)
	}
	return store, nil
}

func readSource(ctx context.Context, source string) ([]catalog.Vehicle, error) {
	source = strings.TrimSpace(source)
	if source == "" || source == SourceBuiltin {
		return catalog.Default(), nil
	}
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return catalog.LoadFile(source)
	case ".db", ".sqlite", ".sqlite3":
		return database.LoadCatalog(ctx, source)
	default:
		return nil, fmt.Errorf("unknown catalog source %q: want %s, a .yaml file or a .db file", source, SourceBuiltin)
	}
}

func displaySource(source string) string {
	if source == "" {
		return SourceBuiltin
	}
	return source
}
