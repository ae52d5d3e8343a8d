package receipt

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"rebate-ledger/internal/pkg/config"
	"rebate-ledger/internal/pkg/errs"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const dataURLPrefix = "data:image/jpeg;base64,"

var (
	ErrReceiptTooLarge = errs.NewValidation("that photo is too large, try a smaller image")
	ErrNotAnImage      = errs.NewValidation("receipt file is not an image")
	ErrUndecodable     = errs.NewValidation("could not read that receipt image, try again")
)

// Encoder shrinks receipt photos so the longest side fits MaxDimension and
// re-encodes them as JPEG data URLs.
type Encoder struct {
	maxRawBytes  int
	maxDimension int
	maxPixels    int
	quality      int
}

func NewEncoder(cfg config.ReceiptConfig) *Encoder {
	return &Encoder{
		maxRawBytes:  cfg.MaxRawBytes,
		maxDimension: cfg.MaxDimension,
		maxPixels:    cfg.MaxPixels,
		quality:      cfg.JPEGQuality,
	}
}

func (e *Encoder) Encode(ctx context.Context, raw []byte) (string, error) {
	if e.maxRawBytes > 0 && len(raw) > e.maxRawBytes {
		return "", ErrReceiptTooLarge
	}
	if !strings.HasPrefix(mimetype.Detect(raw).String(), "image/") {
		return "", ErrNotAnImage
	}

	// the header is enough to size the frame Decode would allocate
	hdr, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", errs.WithCause(errs.Wrap(ErrUndecodable, "decode receipt header"), err)
	}
	if e.maxPixels > 0 && int64(hdr.Width)*int64(hdr.Height) > int64(e.maxPixels) {
		return "", errs.Wrapf(ErrReceiptTooLarge, "%dx%d pixels", hdr.Width, hdr.Height)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", errs.WithCause(errs.Wrap(ErrUndecodable, "decode receipt"), err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dst := e.scale(src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: e.quality}); err != nil {
		return "", errs.Wrap(err, "encode receipt")
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// scale flattens onto white and never upscales.
func (e *Encoder) scale(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)
	if e.maxDimension > 0 && longest > e.maxDimension {
		w = max(1, (w*e.maxDimension+longest/2)/longest)
		h = max(1, (h*e.maxDimension+longest/2)/longest)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
