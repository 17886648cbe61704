package formatter

import (
	"strings"

	"gopkg.in/yaml.v2"
)

type yamlFormatter struct{}

// NewYAMLFormatter formats output into yaml
func NewYAMLFormatter() yamlFormatter {
	return yamlFormatter{}
}

// Format returns the yaml output without a trailing newline
func (f yamlFormatter) Format(data func() interface{}) (string, error) {
	out, err := yaml.Marshal(data())
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(out), "\n"), nil
}
