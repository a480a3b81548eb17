package auth

// Identity is the opaque gate the content core sees: either an
// authenticated subject is present or it is not. How the subject was
// authenticated is the transport layer's concern.
type Identity struct {
	Subject string
}

// Anonymous is the absent identity.
var Anonymous = Identity{}

func (i Identity) Present() bool {
	return i.Subject != ""
}
