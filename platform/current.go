package platform

// Current returns the variant selected by the build target's tags.
// Host builds report VariantUnknown.
func Current() Variant { return current }
