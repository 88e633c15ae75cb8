package reward

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/MrJamesThe3rd/careercoin/internal/encoding"
)

type catalogFile struct {
	Items []Item `toml:"item"`
}

// LoadCatalog parses a TOML document of [[item]] tables.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile

	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown field %s", ErrInvalidCatalog, undecoded[0])
	}

	return NewCatalog(f.Items)
}

// LoadCatalogFile reads a catalog from disk. Files saved in a legacy charset are
// decoded to UTF-8 first.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detecting catalog encoding: %w", err)
	}

	return LoadCatalog(r)
}
