package config

import "os"

// DefaultPageSize is the question list page size when the caller does not
// pass a limit.
const DefaultPageSize = 5

func StoragePath() string {
	path := os.Getenv("STORAGE_PATH")
	if path == "" {
		path = "stackit.db"
	}
	return path
}
