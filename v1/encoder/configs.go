package encoder

// Defaults applied by NewClient when the corresponding Config field is zero.
const (
	DefaultInitialBufferSize = 256
	DefaultBatchConcurrency  = 8
	DefaultMaxDepth          = 64
)

// Config defines the encoder configuration.
type Config struct {
	// InitialBufferSize is the starting capacity of the output buffer.
	// The buffer doubles whenever a write does not fit, so this is only a hint.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "initial_buffer_size" key
	//   - Environment variable MSGCODEC_INITIAL_BUFFER_SIZE
	//
	// Default: 256
	InitialBufferSize int `yaml:"initial_buffer_size" envconfig:"MSGCODEC_INITIAL_BUFFER_SIZE"`

	// MaxMessageSize caps the encoded size of one message, nested messages
	// included. Zero means unlimited.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "max_message_size" key
	//   - Environment variable MSGCODEC_MAX_MESSAGE_SIZE
	MaxMessageSize int `yaml:"max_message_size" envconfig:"MSGCODEC_MAX_MESSAGE_SIZE"`

	// BatchConcurrency bounds the number of concurrent encodes in EncodeBatch.
	//
	// Default: 8
	BatchConcurrency int `yaml:"batch_concurrency" envconfig:"MSGCODEC_BATCH_CONCURRENCY"`

	// MaxDepth is the deepest message nesting encoded, the top level message
	// counting as depth 0. The default equals decoder.DefaultMaxDepth.
	//
	// Default: 64
	MaxDepth int `yaml:"max_depth" envconfig:"MSGCODEC_MAX_DEPTH"`
}
