// Package kvstore implementa el adapter clave-valor namespaced que usan los
// servicios mock: todas las claves se guardan como "<prefix>:<key>" con el valor
// serializado a JSON.
//
// Todas las operaciones son fail-soft: un error de IO o de serialización se
// registra en el logger y la operación degrada a no-op (escrituras) o a resultado
// ausente (lecturas). Get expone además el error de infraestructura para que el
// caller pueda distinguir "clave inexistente" de "storage caído" si le interesa.
//
// Limitación conocida: entre procesos concurrentes sobre el mismo backend rige
// last-write-wins a nivel de clave; no hay control de concurrencia multiusuario.
package kvstore

// Store es el contrato del adapter. Lo implementan FileStore (archivo local,
// equivalente al localStorage del navegador) y RedisStore.
type Store interface {
	// Set serializa value a JSON y lo guarda bajo la clave namespaced.
	Set(key string, value any)
	// Get deserializa el valor almacenado en dest. found=false si la clave no
	// existe o el contenido no parsea; err≠nil solo ante fallo de infraestructura.
	Get(key string, dest any) (found bool, err error)
	// Remove borra una clave namespaced.
	Remove(key string)
	// Clear borra todas las claves del namespace, dejando intactas las ajenas.
	Clear()
}
