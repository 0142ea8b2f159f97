package exif

import (
	"bytes"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

// ScanFull runs the ifd-v2 strategy: a full TIFF/IFD walk of every string
// tag in the buffer's EXIF block. It is strictly for inspection output and
// must never replace Scan in the scoring path, since the two strategies
// detect different tag sets and would produce different scores.
func ScanFull(data []byte) (Tags, bool) {
	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false
	}
	tags := Tags{}
	x.Walk(tagWalker{tags: tags})
	if len(tags) == 0 {
		return nil, false
	}
	return tags, true
}

type tagWalker struct {
	tags Tags
}

func (w tagWalker) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	if tag.Type != tiff.DTAscii && tag.Type != tiff.DTUndefined {
		return nil
	}
	val := tag.String()
	// Remove surrounding quotes from string values
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	w.tags[string(name)] = val
	return nil
}
