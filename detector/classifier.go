package detector

import "math"

// Facial tension heuristic. The stress cues are gradient energies over the
// regions where tension shows on a centered 48x48 face crop: furrowed brows
// produce vertical contrast in the upper band, a compressed mouth produces
// horizontal contrast in the lower band, and an uneven expression raises
// left/right asymmetry. Each cue contributes monotonically to the score.
const (
	browTop, browBottom   = 8, 20
	mouthTop, mouthBottom = 32, 46

	browWeight  = 0.40
	mouthWeight = 0.35
	asymWeight  = 0.25

	// Gradient energies are normalized against this before weighting.
	energyScale = 64.0
)

// Score implements Detector.
func (d *pigoDetector) Score(f *Frame) int {
	return ScoreFrame(f)
}

// ScoreFrame maps a normalized frame to a stress level in [0,100]. It is a
// pure function of the pixels: identical frames always score identically.
func ScoreFrame(f *Frame) int {
	brow := verticalEnergy(f, browTop, browBottom)
	mouth := horizontalEnergy(f, mouthTop, mouthBottom)
	asym := asymmetry(f)

	score := 100 * (browWeight*normalize(brow) +
		mouthWeight*normalize(mouth) +
		asymWeight*normalize(asym))

	return clamp(int(math.Round(score)), 0, 100)
}

// verticalEnergy is the mean absolute vertical gradient over a row band.
func verticalEnergy(f *Frame, top, bottom int) float64 {
	var sum float64
	var n int
	for y := top + 1; y < bottom-1; y++ {
		for x := 0; x < FrameSize; x++ {
			above := int(f.Gray.GrayAt(x, y-1).Y)
			below := int(f.Gray.GrayAt(x, y+1).Y)
			sum += math.Abs(float64(below - above))
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// horizontalEnergy is the mean absolute horizontal gradient over a row band.
func horizontalEnergy(f *Frame, top, bottom int) float64 {
	var sum float64
	var n int
	for y := top; y < bottom; y++ {
		for x := 1; x < FrameSize-1; x++ {
			left := int(f.Gray.GrayAt(x-1, y).Y)
			right := int(f.Gray.GrayAt(x+1, y).Y)
			sum += math.Abs(float64(right - left))
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// asymmetry is the mean absolute difference between mirrored pixels.
func asymmetry(f *Frame) float64 {
	var sum float64
	var n int
	for y := 0; y < FrameSize; y++ {
		for x := 0; x < FrameSize/2; x++ {
			left := int(f.Gray.GrayAt(x, y).Y)
			right := int(f.Gray.GrayAt(FrameSize-1-x, y).Y)
			sum += math.Abs(float64(left - right))
			n++
		}
	}
	return sum / float64(n)
}

func normalize(energy float64) float64 {
	v := energy / energyScale
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
