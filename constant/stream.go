package constant

// Category is the fixed classification label reported for every room.
const Category = "NSFW LIVE"

// DefaultStreamName names the single handle synthesized when a manifest yields no variants.
const DefaultStreamName = "default"

// Stream picker keywords.
const (
	StreamBest  = "best"
	StreamWorst = "worst"
)
