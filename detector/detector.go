// Package detector turns webcam captures into stress scores: it decodes the
// payload, finds the largest face, normalizes it into a fixed-size grayscale
// frame and scores facial tension into [0,100].
package detector

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// FrameSize is the side length of the normalized analysis frame.
const FrameSize = 48

// Frame is a preprocessed capture: the face region resized to
// FrameSize x FrameSize grayscale, plus where the face sat in the capture.
type Frame struct {
	Gray *image.Gray
	Face image.Rectangle
}

// Detector preprocesses captures and scores normalized frames.
type Detector interface {
	// Preprocess decodes a (possibly data-URL wrapped) base64 capture and
	// extracts the normalized face frame. Fails with apperror.ErrDecode or
	// apperror.ErrNoFace.
	Preprocess(payload string) (*Frame, error)
	// Score maps a normalized frame to a stress level in [0,100]. Pure and
	// deterministic; never fails for a frame produced by Preprocess.
	Score(f *Frame) int
}

type pigoDetector struct {
	classifier *pigo.Pigo
}

// New loads the face detection cascade from disk and returns a ready
// Detector. The cascade is the binary pigo facefinder format.
func New(cascadePath string) (Detector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read cascade file: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack cascade: %w", err)
	}

	return &pigoDetector{classifier: classifier}, nil
}
