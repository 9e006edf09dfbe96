// Package recordstore define el contrato con el record store remoto:
// operaciones por tabla con filtros de igualdad/desigualdad y orden.
package recordstore

import (
	"context"
	"encoding/json"
)

type Op string

const (
	OpEq  Op = "eq"
	OpNeq Op = "neq"
)

// Cond es una condición sobre una columna. Los valores viajan como string:
// todos los filtros del dominio son ids o enums.
type Cond struct {
	Column string
	Op     Op
	Value  string
}

func Eq(column, value string) Cond  { return Cond{Column: column, Op: OpEq, Value: value} }
func Neq(column, value string) Cond { return Cond{Column: column, Op: OpNeq, Value: value} }

// Filter es una conjunción (AND) de condiciones.
type Filter []Cond

func Where(conds ...Cond) Filter { return Filter(conds) }

// Matches evalúa el filtro contra un valor por columna; lo usan los adapters
// que filtran en proceso.
func (f Filter) Matches(get func(column string) (string, bool)) bool {
	for _, c := range f {
		v, ok := get(c.Column)
		switch c.Op {
		case OpEq:
			if !ok || v != c.Value {
				return false
			}
		case OpNeq:
			if ok && v == c.Value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

type Order struct {
	Column string
	Desc   bool
}

// NewestFirst es el orden por defecto de los listados.
var NewestFirst = Order{Column: "created_at", Desc: true}

// Values son las columnas a escribir en insert/update.
type Values map[string]any

// Table es el gateway por tabla. Las filas van como JSON crudo para que cada
// backend (SQL, PostgREST, memoria) no tenga que conocer los tipos de dominio.
type Table interface {
	Name() string
	Select(ctx context.Context, f Filter, o *Order) ([]json.RawMessage, error)
	Insert(ctx context.Context, v Values) (json.RawMessage, error)
	// Update devuelve las filas modificadas (vacío si nada matcheó).
	Update(ctx context.Context, f Filter, v Values) ([]json.RawMessage, error)
	Delete(ctx context.Context, f Filter) error
}

// Transactor agrupa varias operaciones. Atomic() == false significa que
// WithinTx solo ejecuta fn: el caller debe compensar a mano.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

// Gateway es lo que necesita el router para armar los repositorios.
type Gateway interface {
	Transactor
	Table(name string) Table
}

// Error es un error reportado por el store (SQLSTATE o código PostgREST).
// Error() devuelve solo el mensaje, que es lo que termina viendo el cliente.
type Error struct {
	Code    string
	Message string
	Details string
	Hint    string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NoTx es el Transactor de los backends sin transacciones multi-statement.
type NoTx struct{}

func (NoTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NoTx) Atomic() bool { return false }
