package serializer

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
	"gotest.tools/assert"
	"gotest.tools/assert/cmp"

	"github.com/mailru/timespan/pkg/serializer/errs"
)

func TestYAMLMarshal(t *testing.T) {
	got, err := YAMLMarshal(Window{Name: "checkout", Timeout: *mustMillis(t, 90061001), Grace: mustMillis(t, -250)})
	assert.NilError(t, err)

	var decoded map[string]string

	assert.NilError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Check(t, cmp.DeepEqual(map[string]string{
		"name":    "checkout",
		"timeout": "1.01:01:01.001",
		"grace":   "-00:00:00.250",
	}, decoded))
}

func TestYAMLMarshalError(t *testing.T) {
	_, err := YAMLMarshal(map[string]any{"fn": func() {}})
	if !errors.Is(err, errs.ErrMarshalYAML) {
		t.Errorf("YAMLMarshal() error = %v, wantErr %v", err, errs.ErrMarshalYAML)
	}
}
