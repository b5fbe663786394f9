package entity

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role es el rol de un usuario. Conjunto cerrado: cualquier otro valor se
// rechaza en el borde, nunca llega a persistirse.
type Role string

// Roles válidos para User.
const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
)

// ParseRole normaliza y valida un rol recibido como string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// IsValid indica si el rol pertenece al conjunto cerrado.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleManager
}

// User representa una cuenta del sistema. Password siempre es el hash bcrypt,
// nunca el texto plano.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	Role     Role               `bson:"role" json:"role"`
}
