package settings

// Arcseconds per radian divided by 1000, for µm over mm.
const pixelScaleFactor = 206.2648

// ImagingPreset describes a camera and telescope combination.
type ImagingPreset struct {
	Name             string  `json:"name" validate:"required,max=64"`
	FocalLength      float64 `json:"focal_length" validate:"gt=0"` // mm
	PixelSize        float64 `json:"pixel_size" validate:"gt=0"`   // µm
	ResolutionLength int     `json:"resolution_length" validate:"gt=0"`
	ResolutionWidth  int     `json:"resolution_width" validate:"gt=0"`
}

// PixelScale is the sky angle covered by one pixel, in arcsec.
func (p ImagingPreset) PixelScale() float64 {
	if p.FocalLength <= 0 {
		return 0
	}
	return p.PixelSize / p.FocalLength * pixelScaleFactor
}

// FOVLength is the long side of the field of view in arcmin.
func (p ImagingPreset) FOVLength() float64 {
	return p.PixelScale() * float64(p.ResolutionLength) / 60
}

// FOVWidth is the short side of the field of view in arcmin.
func (p ImagingPreset) FOVWidth() float64 {
	return p.PixelScale() * float64(p.ResolutionWidth) / 60
}
