package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// UserSettings holds per-user report preferences. The JSON file keeps the
// historical "user_stocks" key.
type UserSettings struct {
	TrackedSymbols []string `json:"user_stocks"`
}

// LoadUserSettings reads the settings file. A missing file is not an error:
// it yields empty settings, logged for visibility. Malformed JSON is an
// error because silently dropping a user's watchlist would be misleading.
func LoadUserSettings(path string) (UserSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("User settings file not found, using defaults", "path", path)
			return UserSettings{TrackedSymbols: []string{}}, nil
		}
		return UserSettings{}, fmt.Errorf("read user settings: %w", err)
	}

	var settings UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return UserSettings{}, fmt.Errorf("parse user settings %s: %w", path, err)
	}
	if settings.TrackedSymbols == nil {
		settings.TrackedSymbols = []string{}
	}
	return settings, nil
}
