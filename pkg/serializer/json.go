package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/mailru/timespan/pkg/serializer/errs"
)

func JSONMarshal(v any) (string, error) {
	ret, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrMarshalJSON, err)
	}

	return string(ret), nil
}
