package decoder

// DefaultMaxDepth bounds message nesting when Config.MaxDepth is zero.
const DefaultMaxDepth = 64

// Config defines the decoder configuration.
type Config struct {
	// MaxDepth is the deepest message nesting accepted.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "max_depth" key
	//   - Environment variable MSGCODEC_DECODE_MAX_DEPTH
	//
	// Default: 64
	MaxDepth int `yaml:"max_depth" envconfig:"MSGCODEC_DECODE_MAX_DEPTH"`
}
