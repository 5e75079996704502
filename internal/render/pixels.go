package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Pixels converts the raster into a tightly packed RGBA buffer, one pixel per
// cell, reusing buf when it is large enough.
func (r *Raster) Pixels(buf []byte, on, off color.Color) []byte {
	n := 4 * len(r.data)
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	fillBinaryRGBA(buf, r.data, on, off)
	return buf
}
