// Package provider registers the built-in site adapters.
package provider

import (
	"strings"

	"github.com/cbstream/cbstream/network"
	"github.com/cbstream/cbstream/provider/chaturbate"
	"github.com/cbstream/cbstream/source"
	"github.com/samber/lo"
)

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	Match        func(rawURL string) bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:    chaturbate.ID,
			Name:  chaturbate.Name,
			Match: chaturbate.Match,
			CreateSource: func() (source.Source, error) {
				return chaturbate.New(chaturbate.WithNetwork(network.FromConfig())), nil
			},
		},
	}
}

// Get finds a provider by name or ID, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name)
	})
}

// ForURL returns the first provider that handles rawURL.
func ForURL(rawURL string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.Match(rawURL)
	})
}
