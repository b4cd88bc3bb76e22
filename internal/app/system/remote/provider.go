package remote

import "sync"

// Factory builds a Client from configuration. It returns an error wrapping
// ErrConfigurationUnavailable when required settings are missing.
type Factory func() (Client, error)

// Provider hands out a lazily constructed Client.
//
// The factory runs once, on the first call to Client. Its result, client
// or error, is kept for the life of the Provider, so an unconfigured
// backend fails every call the same way without retrying construction.
type Provider struct {
	factory Factory

	once   sync.Once
	client Client
	err    error
}

// NewProvider returns a Provider that builds its client with factory.
func NewProvider(factory Factory) *Provider {
	return &Provider{factory: factory}
}

// Static returns a Provider that always hands out c.
func Static(c Client) *Provider {
	return NewProvider(func() (Client, error) { return c, nil })
}

// Unconfigured returns a Provider whose every call fails with
// ErrConfigurationUnavailable.
func Unconfigured(reason string) *Provider {
	return NewProvider(func() (Client, error) { return nil, configErr(reason) })
}

// Client returns the shared client, building it on first use.
func (p *Provider) Client() (Client, error) {
	if p == nil || p.factory == nil {
		return nil, configErr("no provider")
	}
	p.once.Do(func() {
		p.client, p.err = p.factory()
		if p.err == nil && p.client == nil {
			p.err = configErr("factory returned no client")
		}
	})
	return p.client, p.err
}

