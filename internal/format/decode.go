package format

import (
	"encoding/json"
	"fmt"
)

// decode maps a generic form payload onto a typed submission. Unknown keys
// are ignored so older payloads keep decoding after schema tweaks.
func decode(data map[string]any, dst any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode form data: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode form data: %w", err)
	}
	return nil
}
