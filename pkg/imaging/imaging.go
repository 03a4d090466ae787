package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
)

// The classifier was trained on 150x150 RGB crops scaled to [0,1]; every
// upload is forced into exactly that shape regardless of source size or mode.
const (
	TargetSize = 150
	Channels   = 3
	TensorLen  = 1 * TargetSize * TargetSize * Channels
)

type IImaging interface {
	Tensorize(data []byte) ([]float32, error)
}

type imaging struct{}

func New() IImaging {
	return &imaging{}
}

// Tensorize decodes the uploaded bytes and produces the model input: a flat
// NHWC float32 tensor of shape [1,150,150,3] with values in [0,1]. Alpha is
// discarded and grayscale expands to three equal channels. The resize ignores
// aspect ratio, matching the training pipeline.
func (i *imaging) Tensorize(data []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	resized := resize.Resize(TargetSize, TargetSize, img, resize.Lanczos3)

	tensor := make([]float32, TensorLen)
	idx := 0
	for y := 0; y < TargetSize; y++ {
		for x := 0; x < TargetSize; x++ {
			// RGBA() is alpha-premultiplied, which would darken translucent
			// pixels; NRGBAModel recovers the straight channel values.
			c := color.NRGBAModel.Convert(resized.At(x, y)).(color.NRGBA)

			tensor[idx] = float32(c.R) / 255.0
			tensor[idx+1] = float32(c.G) / 255.0
			tensor[idx+2] = float32(c.B) / 255.0
			idx += Channels
		}
	}

	return tensor, nil
}
