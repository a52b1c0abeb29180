package config

// SecretStringValue must be exported - used in tests.
const SecretStringValue = "<secret>"

// SecretString holds values (API keys) which must never appear in logs,
// reports or dumped configuration.
type SecretString string

// Reveal returns actual value, the only way to get it out.
func (s SecretString) Reveal() string {
	return string(s)
}

// String masks the value, so %v and zap.Stringer are safe.
func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

// MarshalJSON marshals SecretString to JSON making sure that actual value is not visible.
func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte("\"" + SecretStringValue + "\""), nil
}

// MarshalYAML marshals SecretString to YAML making sure that actual value is not visible.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
