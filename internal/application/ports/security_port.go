package ports

// PasswordHasher define el puerto de salida para el hash de contraseñas.
// La aplicación nunca guarda ni compara contraseñas en texto plano; solo conoce este contrato.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Matches devuelve true si plain corresponde al hash.
	Matches(hash, plain string) bool
}
