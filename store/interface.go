package store

import "zendo/models"

// TaskStore defines the persistence contract for the task collection.
// The whole ordered collection is saved and loaded as a single document;
// there are no partial updates.
type TaskStore interface {
	// Initialize configures the store with backend-specific settings such
	// as file path and data format. It must be called before any other
	// operation.
	Initialize(config map[string]string) error

	// Load reads the persisted collection. An absent or unreadable
	// document yields an empty collection, never an error visible to the
	// user: corruption is logged and recovered locally.
	Load() (models.TaskList, error)

	// Save serializes the entire collection, replacing whatever was
	// persisted before. The write is atomic from the reader's perspective.
	Save(list models.TaskList) error

	// Backup copies the current persisted document to destinationPath.
	Backup(destinationPath string) error

	// Restore replaces the persisted document with the one at sourcePath.
	Restore(sourcePath string) error

	// Close releases any resources held by the store, such as file locks.
	Close() error
}
