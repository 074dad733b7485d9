package mappings

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/icontheme/pkg/colors"
	"github.com/arthur-debert/icontheme/pkg/errors"
	"github.com/arthur-debert/icontheme/pkg/logging"
	"github.com/arthur-debert/icontheme/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Separators accepted between the two colors of a pair
const pairSeparators = "=:"

// fileFormat is the on-disk shape shared by TOML and YAML files
type fileFormat struct {
	Mappings []types.ColorMapping `toml:"mappings" yaml:"mappings"`
}

// ParsePair parses FROM=TO (or FROM:TO) into a normalized mapping.
func ParsePair(pair string) (types.ColorMapping, error) {
	idx := strings.IndexAny(pair, pairSeparators)
	if idx < 0 {
		return types.ColorMapping{}, errors.Newf(errors.ErrInvalidInput,
			"mapping %q must have the form FROM=TO", pair)
	}
	return normalize(types.ColorMapping{From: pair[:idx], To: pair[idx+1:]})
}

// ParsePairs parses pairs in order.
func ParsePairs(pairs []string) (types.ColorMappings, error) {
	result := make(types.ColorMappings, 0, len(pairs))
	for _, p := range pairs {
		m, err := ParsePair(p)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}

// LoadFile reads a TOML or YAML mapping file, chosen by extension.
func LoadFile(path string) (types.ColorMappings, error) {
	logger := logging.GetLogger("mappings")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMappingParse, "cannot read mapping file %s", path).
			WithDetail(errors.DetailPath, path)
	}

	parsed, err := Parse(data, filepath.Ext(path))
	if err != nil {
		if te, ok := err.(*errors.ThemeError); ok {
			return nil, te.WithDetail(errors.DetailPath, path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("count", len(parsed)).
		Msg("Loaded color mappings")
	return parsed, nil
}

// Parse decodes mapping file contents. ext selects the format and includes
// the leading dot.
func Parse(data []byte, ext string) (types.ColorMappings, error) {
	var file fileFormat

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrMappingParse, "invalid TOML mapping file")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, errors.Wrap(err, errors.ErrMappingParse, "invalid YAML mapping file")
		}
	default:
		return nil, errors.Newf(errors.ErrMappingParse,
			"unsupported mapping file type %q (use .toml, .yaml or .yml)", ext)
	}

	result := make(types.ColorMappings, 0, len(file.Mappings))
	for i, m := range file.Mappings {
		n, err := normalize(m)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrMappingParse, "mapping %d", i+1)
		}
		result = append(result, n)
	}
	return result, nil
}

// Collect loads the mapping file, if any, then appends pairs.
func Collect(file string, pairs []string) (types.ColorMappings, error) {
	var result types.ColorMappings
	if file != "" {
		loaded, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		result = append(result, loaded...)
	}

	parsed, err := ParsePairs(pairs)
	if err != nil {
		return nil, err
	}
	return append(result, parsed...), nil
}

func normalize(m types.ColorMapping) (types.ColorMapping, error) {
	from, err := colors.Normalize(m.From)
	if err != nil {
		return types.ColorMapping{}, err
	}
	to, err := colors.Normalize(m.To)
	if err != nil {
		return types.ColorMapping{}, err
	}
	return types.ColorMapping{From: from, To: to}, nil
}
