package domain

import (
	"errors"
	"fmt"
)

// ErrDuplicate lo devuelven los repositorios ante una violación de unicidad (ej. email).
var ErrDuplicate = errors.New("recurso duplicado")

// ErrorKind enumera los tipos de error de dominio. El catálogo es cerrado.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota + 1
	KindInvalidRequest
	KindBookNotFound
	KindBookInvalidStatusTransition
	KindCustomerNotFound
	KindAuthenticationFailed
	KindUserNotFound
	KindInvalidToken
)

type catalogEntry struct {
	code     string
	template string
}

// Códigos estables: los clientes comparan por código, no por mensaje.
var catalog = map[ErrorKind]catalogEntry{
	KindUnauthorized:                {"ML-0000", "Unauthorized"},
	KindInvalidRequest:              {"ML-0001", "Invalid request"},
	KindBookNotFound:                {"ML-1001", "Book [%v] not exists"},
	KindBookInvalidStatusTransition: {"ML-1002", "Cannot update book with status [%v]"},
	KindCustomerNotFound:            {"ML-1101", "Customer [%v] not exists"},
	KindAuthenticationFailed:        {"ML-2001", "Fail to authenticate"},
	KindUserNotFound:                {"ML-2002", "User not found"},
	KindInvalidToken:                {"ML-2003", "Invalid token"},
}

// Code devuelve el código estable del tipo (ej. "ML-1101").
func (k ErrorKind) Code() string {
	return catalog[k].code
}

func (k ErrorKind) String() string {
	if e, ok := catalog[k]; ok {
		return e.code
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FieldError detalle de validación de un campo.
type FieldError struct {
	Field   string
	Message string
}

// Error es el error de dominio que se expone al llamador: tipo, código y mensaje ya formateado.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

// NewError construye un error del catálogo interpolando args en la plantilla.
func NewError(kind ErrorKind, args ...any) *Error {
	entry, ok := catalog[kind]
	if !ok {
		panic(fmt.Sprintf("domain: tipo de error desconocido %d", int(kind)))
	}
	msg := entry.template
	if len(args) > 0 {
		msg = fmt.Sprintf(entry.template, args...)
	}
	return &Error{Kind: kind, Code: entry.code, Message: msg}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is compara por tipo, así errors.Is(err, domain.ErrCustomerNotFound) funciona con cualquier id.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// WithFields agrega detalles de validación.
func (e *Error) WithFields(fields ...FieldError) *Error {
	e.Fields = append(e.Fields, fields...)
	return e
}

// Wrap conserva la causa original.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Valores para comparar con errors.Is.
var (
	ErrUnauthorized                = &Error{Kind: KindUnauthorized, Code: KindUnauthorized.Code()}
	ErrInvalidRequest              = &Error{Kind: KindInvalidRequest, Code: KindInvalidRequest.Code()}
	ErrBookNotFound                = &Error{Kind: KindBookNotFound, Code: KindBookNotFound.Code()}
	ErrBookInvalidStatusTransition = &Error{Kind: KindBookInvalidStatusTransition, Code: KindBookInvalidStatusTransition.Code()}
	ErrCustomerNotFound            = &Error{Kind: KindCustomerNotFound, Code: KindCustomerNotFound.Code()}
	ErrAuthenticationFailed        = &Error{Kind: KindAuthenticationFailed, Code: KindAuthenticationFailed.Code()}
	ErrUserNotFound                = &Error{Kind: KindUserNotFound, Code: KindUserNotFound.Code()}
	ErrInvalidToken                = &Error{Kind: KindInvalidToken, Code: KindInvalidToken.Code()}
)

// Constructores con el identificador interpolado en el punto de fallo.

func Unauthorized() *Error { return NewError(KindUnauthorized) }
func InvalidRequest() *Error { return NewError(KindInvalidRequest) }
func BookNotFound(id int) *Error { return NewError(KindBookNotFound, id) }
func CustomerNotFound(id int) *Error { return NewError(KindCustomerNotFound, id) }
func AuthenticationFailed() *Error { return NewError(KindAuthenticationFailed) }
func UserNotFound() *Error { return NewError(KindUserNotFound) }
func InvalidToken() *Error { return NewError(KindInvalidToken) }
func BookInvalidStatusTransition(status fmt.Stringer) *Error {
	return NewError(KindBookInvalidStatusTransition, status)
}

// AsError extrae el *Error de dominio de la cadena, si existe.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
