package repositories

import (
	"github.com/yigit/roster/internal/pkg/filestorage"
)

// Repositories holds all the repository instances
type Repositories struct {
	RosterRepository *RosterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(storage filestorage.FileStorage, files Files) *Repositories {
	return &Repositories{
		RosterRepository: NewRosterRepository(storage, files),
	}
}
