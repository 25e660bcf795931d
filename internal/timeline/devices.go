package timeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// deviceEntry covers the field names historically used in the device
// registry; the first non-empty one wins.
type deviceEntry struct {
	ID       string `json:"id"`
	DeviceID string `json:"device_id"`
	Alias    string `json:"alias"`
}

func (d deviceEntry) identifier() string {
	switch {
	case d.ID != "":
		return d.ID
	case d.DeviceID != "":
		return d.DeviceID
	default:
		return d.Alias
	}
}

// LoadDeviceIDs reads the device registry (a JSON list of device objects)
// and returns the unique device identifiers in file order. Entries
// without any identifier are skipped; an empty result is an error because
// a timeline without targets is useless.
func LoadDeviceIDs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device registry: %w", err)
	}

	var entries []deviceEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("device registry %s must contain a JSON list: %w", path, err)
	}

	seen := make(map[string]bool)
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		id := e.identifier()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("no device ids found in %s", path)
	}
	return ids, nil
}
