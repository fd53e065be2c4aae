package domain

// Code identifica el resultado de negocio de una operación.
// Es un conjunto cerrado: la capa HTTP mapea cada código a un status.
type Code string

const (
	CodeInternalError        Code = "INTERNAL_ERROR"
	CodeNotFound             Code = "NOT_FOUND"
	CodeAlreadyCreated       Code = "ALREADY_CREATED"
	CodeForbidden            Code = "FORBIDDEN"
	CodeInvalidMemberID      Code = "INVALID_MEMBER_ID"
	CodeMembersCountExceeded Code = "MEMBERS_COUNT_EXCEEDED"
)

// Error es el resultado de negocio negativo de una operación.
// No es un error de Go: viaja como valor dentro de Response.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// Unit es el valor vacío de respuestas sin payload (disband).
type Unit struct{}

// Response es el sobre de dos variantes usado de punta a punta:
// Processed(value) o Error(code, message). Err == nil implica éxito.
type Response[T any] struct {
	Value T
	Err   *Error
}

// Processed construye una respuesta exitosa.
func Processed[T any](v T) Response[T] {
	return Response[T]{Value: v}
}

// Failure construye una respuesta de error con código del conjunto cerrado.
func Failure[T any](code Code, message string) Response[T] {
	return Response[T]{Err: NewError(code, message)}
}

// OK reporta si la respuesta es Processed.
func (r Response[T]) OK() bool { return r.Err == nil }
