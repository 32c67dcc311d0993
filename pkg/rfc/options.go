package rfc

type options struct {
	acceptGeneric bool
}

// Option configures Validate.
type Option func(*options)

// AcceptGeneric controls whether the placeholder RFCs XAXX010101000 and
// XEXX010101000 are accepted. Accepted by default.
func AcceptGeneric(accept bool) Option {
	return func(o *options) {
		o.acceptGeneric = accept
	}
}

// RejectGeneric is shorthand for AcceptGeneric(false).
func RejectGeneric() Option {
	return AcceptGeneric(false)
}

func newOptions(opts []Option) options {
	o := options{acceptGeneric: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
