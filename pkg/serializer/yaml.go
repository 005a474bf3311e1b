package serializer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mailru/timespan/pkg/serializer/errs"
)

// YAMLMarshal encodes v as a YAML document. Timespan values are written in
// canonical form through their MarshalText.
func YAMLMarshal(v any) (string, error) {
	ret, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalYAML, err)
	}

	return string(ret), nil
}
