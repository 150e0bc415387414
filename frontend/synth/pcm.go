package synth

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// PCM16 drains a finite streamer into signed 16-bit little-endian stereo
// frames, the format the ebiten audio player consumes.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)

	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(quantize(v)))
			}
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func quantize(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
