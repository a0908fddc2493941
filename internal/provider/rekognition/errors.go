package rekognition

import "errors"

var (
	// ErrInvalidImage indicates the image is outside Rekognition's size limits
	ErrInvalidImage = errors.New("invalid image for rekognition")

	// ErrInvalidCredentials indicates that AWS credentials are invalid or missing
	ErrInvalidCredentials = errors.New("invalid or missing AWS credentials")
)
