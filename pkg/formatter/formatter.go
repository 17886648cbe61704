package formatter

import "fmt"

// Formatter formats data
type Formatter interface {
	// Format will call the getter func and render the returned data
	Format(getter func() interface{}) (string, error)
}

const (
	Table = "table"
	JSON  = "json"
	YAML  = "yaml"
)

// New returns the formatter for an --output value.
func New(output string) (Formatter, error) {
	switch output {
	case "", Table:
		return NewTableFormatter(), nil
	case JSON:
		return NewJSONFormatter(), nil
	case YAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q, expected table|json|yaml", output)
	}
}

// IsTable reports whether output selects the table formatter, whose getter
// must return TableContents.
func IsTable(output string) bool {
	return output == "" || output == Table
}
