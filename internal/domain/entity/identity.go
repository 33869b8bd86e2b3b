package entity

// Identity es la identidad del actor resuelta por el proveedor de
// autenticación. Se pasa explícitamente a cada caso de uso; el core no
// mantiene sesión global.
type Identity struct {
	UID   string
	Email string
}

// IsZero informa si no hay usuario autenticado.
func (i Identity) IsZero() bool { return i.UID == "" }
