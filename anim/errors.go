package anim

// ConfigurationError reports a programmer error: a track built or used in
// a way the engine cannot evaluate (no keys, unknown data type, value
// that does not match the declared type). Data-level problems such as an
// unknown range name are not errors; those operations no-op instead.
type ConfigurationError struct {
	Op     string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "anim: " + e.Op + ": " + e.Reason
}
