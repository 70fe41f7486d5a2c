package calculators

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Catalog is the set of presets the calculators offer.
type Catalog struct {
	Print      []PrintPreset       `json:"print" toml:"print"`
	Canvas     []CanvasPresetGroup `json:"canvas" toml:"canvas"`
	TypeScales []TypeScaleRatio    `json:"typeScales" toml:"type_scales"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Print:      defaultPrintPresets(),
		Canvas:     defaultCanvasPresets(),
		TypeScales: defaultTypeScales(),
	}
}

// LoadCatalogFile reads presets from a TOML file. A missing file yields the
// built-in catalog.
func LoadCatalogFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return Catalog{}, fmt.Errorf("presets: open %s: %w", path, err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// LoadCatalog decodes TOML presets. Each section present in the input
// replaces the corresponding built-in list; absent sections keep the
// defaults.
func LoadCatalog(r io.Reader) (Catalog, error) {
	var raw Catalog
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return Catalog{}, fmt.Errorf("presets: parse TOML: %w", err)
	}

	cat := DefaultCatalog()
	if len(raw.Print) > 0 {
		for i, p := range raw.Print {
			if p.Name == "" {
				return Catalog{}, fmt.Errorf("presets: print preset %d: missing required field 'name'", i)
			}
			unit, err := ParseUnit(string(p.Unit))
			if err != nil {
				return Catalog{}, fmt.Errorf("presets: print preset %q: %w", p.Name, err)
			}
			raw.Print[i].Unit = unit
		}
		cat.Print = raw.Print
	}
	if len(raw.Canvas) > 0 {
		for i, g := range raw.Canvas {
			if g.Group == "" {
				return Catalog{}, fmt.Errorf("presets: canvas group %d: missing required field 'group'", i)
			}
		}
		cat.Canvas = raw.Canvas
	}
	if len(raw.TypeScales) > 0 {
		cat.TypeScales = raw.TypeScales
	}

	return cat, nil
}

// FindTypeScale looks a ratio up by name.
func (c Catalog) FindTypeScale(name string) (TypeScaleRatio, bool) {
	for _, s := range c.TypeScales {
		if s.Name == name {
			return s, true
		}
	}
	return TypeScaleRatio{}, false
}
