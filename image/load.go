package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/mitchellh/go-homedir"
)

// ErrDecode is returned when an image cannot be opened or decoded.
var ErrDecode = errors.New("cannot decode image")

// Load loads an image for use given a file path. A leading ~ is expanded to
// the home directory and EXIF orientation is applied.
func Load(path string) (image.Image, error) {
	p, e := homedir.Expand(path)
	if e != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDecode, path, e)
	}

	i, e := imaging.Open(p, imaging.AutoOrientation(true))
	if e != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrDecode, path, e)
	}

	return i, nil
}
