package domain

// SizeBand represents the size class of a dog
type SizeBand string

const (
	SizeSmall  SizeBand = "small"
	SizeMedium SizeBand = "medium"
	SizeLarge  SizeBand = "large"
)

// SizeBands all size bands in ascending order
var SizeBands = []SizeBand{SizeSmall, SizeMedium, SizeLarge}

// IsValid returns true if the size band is known
func (s SizeBand) IsValid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ClassifySize maps a dog's height in centimetres to a size band.
// Unknown height is priced as medium.
func ClassifySize(heightCm *float64) SizeBand {
	if heightCm == nil {
		return SizeMedium
	}

	switch h := *heightCm; {
	case h < SmallMaxHeightCm:
		return SizeSmall
	case h < MediumMaxHeightCm:
		return SizeMedium
	default:
		return SizeLarge
	}
}
