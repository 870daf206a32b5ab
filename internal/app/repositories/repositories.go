package repositories

import (
	"github.com/sis-eval/backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfessorRepository *ProfessorRepository
	UserRepository      *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		ProfessorRepository: NewProfessorRepository(database),
		UserRepository:      NewUserRepository(database),
	}
}
