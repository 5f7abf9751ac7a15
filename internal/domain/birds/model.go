package birds

import "time"

// Bird representa un ave registrada en el sistema.
type Bird struct {
	ID string

	Name    string
	Species string

	// Contador de likes. Nunca negativo; el único incremento es de a 1.
	Likes int

	CreatedAt time.Time
	UpdatedAt time.Time
}
