package porter

import (
	"encoding/json"
	"fmt"

	"github.com/verdantfin/fintrack/internal/model"
)

// Export serializes a user's data as indented JSON, matching the shape
// Import accepts so exports round-trip.
func Export(data *model.UserData) ([]byte, error) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return out, nil
}
