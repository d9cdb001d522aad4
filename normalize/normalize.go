// Package normalize holds the post-parse passes that rewrite contact
// attributes in place: quoted-printable decoding and phone-key reduction.
//
// Passes never add or remove contacts and never leave a duplicate key in a
// contact. When both run, quoted-printable decoding goes first so phone
// values are compared in their decoded form.
package normalize

import "github.com/unkn0wn-root/contactconv/contact"

// Pass transforms a contact list into a new one of the same length.
type Pass interface {
	Name() string
	Apply(contact.List) (contact.List, error)
}
