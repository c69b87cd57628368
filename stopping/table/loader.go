package table

import (
	"bytes"
	"fmt"

	"github.com/sgostarter/i/stg"
)

// FileName returns the conventional table name for an ion in a material,
// for example "H_in_Ta".
func FileName(ion, material string) string {
	return ion + "_in_" + material
}

// Loader reads tables out of a file storage rooted at the tables directory.
type Loader struct {
	storage stg.FileStorage
	opts    []ReadOption
}

// NewLoader creates a loader over storage. opts are passed to [Read] for
// every table.
func NewLoader(storage stg.FileStorage, opts ...ReadOption) *Loader {
	return &Loader{storage: storage, opts: opts}
}

// Load reads and validates the table for ion in material.
func (l *Loader) Load(ion, material string) (Table, error) {
	name := FileName(ion, material)

	d, err := l.storage.ReadFile(name)
	if err != nil {
		return Table{}, fmt.Errorf("table: read %s: %w", name, err)
	}

	t, err := Read(bytes.NewReader(d), l.opts...)
	if err != nil {
		return Table{}, fmt.Errorf("table: %s: %w", name, err)
	}

	return t, nil
}
