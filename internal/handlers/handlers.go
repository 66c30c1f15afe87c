package handlers

import (
	"database/sql"

	"github.com/rs/zerolog"
)

// Handlers holds the dependencies shared by every handler.
type Handlers struct {
	DB     *sql.DB
	Logger zerolog.Logger
}
