package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrDuplicateSerial   = errors.New("número de serie duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado inválida")
	ErrNotABundle        = errors.New("el producto no es un paquete")
	ErrBundleComponent   = errors.New("un paquete no puede ser componente de otro paquete")
	ErrAreaNotInProvince = errors.New("el área no pertenece a una provincia existente")
	ErrClientNotInArea   = errors.New("el cliente no pertenece a un área existente")
)
