package detector

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/draw"
	"strings"

	// Webcam captures arrive as JPEG or PNG data URLs.
	_ "image/jpeg"
	_ "image/png"

	pigo "github.com/esimov/pigo/core"
	xdraw "golang.org/x/image/draw"

	"github.com/maheshathikala/stress-detect/apperror"
)

const (
	minFaceSize  = 60
	shiftFactor  = 0.1
	scaleFactor  = 1.1
	iouThreshold = 0.2
	// Detections below this quality are treated as noise.
	minQuality = 5.0
)

// Preprocess implements Detector.
func (d *pigoDetector) Preprocess(payload string) (*Frame, error) {
	gray, err := decodeGray(payload)
	if err != nil {
		return nil, err
	}

	bounds := gray.Bounds()
	params := pigo.CascadeParams{
		MinSize:     minFaceSize,
		MaxSize:     max(bounds.Dx(), bounds.Dy()),
		ShiftFactor: shiftFactor,
		ScaleFactor: scaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: gray.Pix,
			Rows:   bounds.Dy(),
			Cols:   bounds.Dx(),
			Dim:    gray.Stride,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, iouThreshold)

	best, ok := bestFace(dets)
	if !ok {
		return nil, apperror.ErrNoFace
	}

	half := best.Scale / 2
	face := image.Rect(best.Col-half, best.Row-half, best.Col+half, best.Row+half).
		Intersect(bounds)
	if face.Empty() {
		return nil, apperror.ErrNoFace
	}

	dst := image.NewGray(image.Rect(0, 0, FrameSize, FrameSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), gray.SubImage(face), face, xdraw.Src, nil)

	return &Frame{Gray: dst, Face: face}, nil
}

// decodeGray decodes a base64 capture, stripping any data-URL prefix, and
// converts it to grayscale.
func decodeGray(payload string) (*image.Gray, error) {
	if i := strings.LastIndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, apperror.ErrDecode
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, apperror.ErrDecode
	}

	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray, nil
}

// bestFace picks the largest acceptable detection, matching the original
// behavior of analyzing only the dominant face in frame.
func bestFace(dets []pigo.Detection) (pigo.Detection, bool) {
	var best pigo.Detection
	found := false
	for _, det := range dets {
		if det.Q < minQuality {
			continue
		}
		if !found || det.Scale > best.Scale {
			best = det
			found = true
		}
	}
	return best, found
}
