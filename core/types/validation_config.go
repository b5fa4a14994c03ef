package types

// ValidationConfig controls override validation limits and caching
type ValidationConfig struct {
	// Security: override documents come from project files on disk
	MaxOverrideSize int // Max size of one override object in bytes (default: 64KB)

	// Performance: Caching
	EnableCache  bool // Cache compiled schemas per kind (default: true)
	MaxCacheSize int  // Max cached schemas (default: 16)
}

// DefaultValidationConfig returns secure defaults
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxOverrideSize: 64 * 1024, // 64KB
		EnableCache:     true,
		MaxCacheSize:    16,
	}
}
