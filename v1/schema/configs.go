package schema

// Config defines where the schema registry is loaded from at start-up.
type Config struct {
	// Path is the location of the compiled schema document (JSON).
	//
	// This setting can be configured via:
	//   - YAML configuration with the "path" key
	//   - Environment variable MSGCODEC_SCHEMA_PATH
	Path string `yaml:"path" envconfig:"MSGCODEC_SCHEMA_PATH"`
}
