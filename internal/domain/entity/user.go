package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"
	RoleRecepcion = "recepcion"
)

// User representa un usuario del sistema (acceso a la API del taller).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, recepcion
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
