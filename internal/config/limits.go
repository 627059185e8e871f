package config

// Validation limits enforced at service boundaries.
const (
	MaxTitleLength        = 200
	MaxTopicLength        = 4000
	MaxSectionTitleLength = 200
	MaxInstructionLength  = 2000
	MaxOutlineItems       = 50
)
