package style

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed default.style.json
var defaultStyle []byte

//go:embed default.css
var defaultStylesheet []byte

// DefaultName is the style used when article does not ask for one.
const DefaultName = "default"

// Default returns embedded default style description.
func Default() *Description {
	d, err := Parse(defaultStyle)
	if err != nil {
		panic(fmt.Sprintf("embedded style is broken: %v", err))
	}
	return d
}

// DefaultStylesheet returns embedded global stylesheet.
func DefaultStylesheet() []byte {
	return defaultStylesheet
}

// Load reads "<name>.style.json" from dir. Default style without a file on
// disk resolves to embedded description.
func Load(dir, name string) (*Description, error) {
	if name == "" {
		name = DefaultName
	}
	if dir == "" {
		if name == DefaultName {
			return Default(), nil
		}
		return nil, fmt.Errorf("style %q requested but styles directory is not configured", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name+".style.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && name == DefaultName {
			return Default(), nil
		}
		return nil, fmt.Errorf("unable to read style %q: %w", name, err)
	}
	return Parse(data)
}

// LoadStylesheet reads optional "<name>.style.css" from dir, absent file is
// not an error.
func LoadStylesheet(dir, name string) ([]byte, error) {
	if dir == "" {
		return nil, nil
	}
	if name == "" {
		name = DefaultName
	}
	data, err := os.ReadFile(filepath.Join(dir, name+".style.css"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to read stylesheet for style %q: %w", name, err)
	}
	return data, nil
}
