// Package common keeps enums shared by configuration, article model and
// converter so none of them has to import the others for a handful of
// constants.
package common

// Strategy used to size an image against its target box.
// ENUM(responsive, viewport, scaled)
type ImageSizingMode int

// Placement of a caption relative to the element it describes.
// ENUM(below, above)
type CaptionPosition int

// Caption font size, selects caption style block.
// ENUM(small, medium, large, extra-large)
type CaptionSize int

// StyleKey returns suffix used by style description keys for this size.
func (s CaptionSize) StyleKey() string {
	if s == CaptionSizeExtraLarge {
		return "extra_large"
	}
	return s.String()
}
