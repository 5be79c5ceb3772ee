// Package icon renders UI symbols in the variant chosen by the icons.variant setting.
package icon

import (
	"github.com/cbstream/cbstream/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Live
	Offline
	Stream
)

var icons = map[Icon]*iconDef{
	Success: {emoji: "✅", nerd: "\uf00c", plain: "+"},
	Fail:    {emoji: "❌", nerd: "\uf00d", plain: "!"},
	Live:    {emoji: "🔴", nerd: "\uf111", plain: "*"},
	Offline: {emoji: "💤", nerd: "\uf186", plain: "-"},
	Stream:  {emoji: "📺", nerd: "\uf26c", plain: ">"},
}

// Get returns the rendered string for a specified Icon identifier.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
