package profile

import (
	"context"
	"fmt"
	"strings"
)

// Metadata keys read and written by the checkout pipeline.
const (
	KeyTitle     = "billing_title"
	KeyBirthdate = "billing_birthdate"
	KeyFirstName = "billing_first_name"
	KeyLastName  = "billing_last_name"
)

// Scope distinguishes customer metadata from order metadata.
type Scope string

const (
	ScopeCustomer Scope = "customer"
	ScopeOrder    Scope = "order"
)

// Ref addresses one metadata bag.
type Ref struct {
	Scope Scope  `json:"scope"`
	ID    string `json:"id"`
}

// Customer returns a customer reference.
func Customer(id string) Ref {
	return Ref{Scope: ScopeCustomer, ID: strings.TrimSpace(id)}
}

// Order returns an order reference.
func Order(id string) Ref {
	return Ref{Scope: ScopeOrder, ID: strings.TrimSpace(id)}
}

// Valid reports whether the reference names a known scope and an id.
func (r Ref) Valid() bool {
	return (r.Scope == ScopeCustomer || r.Scope == ScopeOrder) && r.ID != ""
}

func (r Ref) String() string {
	return fmt.Sprintf("%s:%s", r.Scope, r.ID)
}

// Identity is the authenticated shopper. The zero value is anonymous.
type Identity struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Anonymous reports whether nobody is signed in.
func (i Identity) Anonymous() bool {
	return strings.TrimSpace(i.ID) == ""
}

// Ref returns the customer reference of the identity.
func (i Identity) Ref() Ref {
	return Customer(i.ID)
}

// MetaReader reads metadata. Missing keys read as "" without error.
type MetaReader interface {
	Meta(ctx context.Context, ref Ref, key string) (string, error)
}

// MetaWriter writes metadata.
type MetaWriter interface {
	SetMeta(ctx context.Context, ref Ref, key, value string) error
}

// Store is the persistence adapter the pipeline reads from and writes to.
type Store interface {
	MetaReader
	MetaWriter
}

// Directory resolves identities by customer id.
type Directory interface {
	Identity(ctx context.Context, id string) (Identity, error)
}
