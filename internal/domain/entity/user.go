package entity

// Roles válidos para User.
const (
	RoleSeller  = "seller"  // crea propuestas
	RoleManager = "manager" // aprueba o rechaza propuestas
)

// User representa un actor del sistema. Los tags JSON siguen el layout persistido
// bajo la clave "user" del kvstore; PasswordHash nunca se serializa.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"` // seller, manager
	PasswordHash string `json:"-"`    // bcrypt hash, solo en el directorio de usuarios
}

// Sanitized devuelve una copia sin el hash de password, apta para persistir en sesión
// o devolver al cliente.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	return &User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
