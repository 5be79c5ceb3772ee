package source

// Outcome labels how a Result's handles were produced.
const (
	OutcomeEmpty    = "empty"
	OutcomeVariants = "variants"
	OutcomeFallback = "fallback"
)

// Result is everything a single resolution produces.
type Result struct {
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Category   string    `json:"category"`
	Status     string    `json:"status,omitempty"`
	Outcome    string    `json:"outcome"`
	Handles    []*Handle `json:"streams"`
}

// Live reports whether at least one playable stream was produced.
func (r *Result) Live() bool {
	return r != nil && len(r.Handles) > 0
}

// Names returns the handle names in order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Handles))
	for i, h := range r.Handles {
		names[i] = h.Name
	}
	return names
}

// Get returns the handle with the given name.
func (r *Result) Get(name string) (*Handle, bool) {
	for _, h := range r.Handles {
		if h.Name == name {
			return h, true
		}
	}
	return nil, false
}
