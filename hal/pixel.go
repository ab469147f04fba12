package hal

func rgb565(r, g, b uint8) uint16 {
	return (uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F)
}

func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8(p>>11) << 3
	g = uint8(p>>5&0x3F) << 2
	b = uint8(p&0x1F) << 3
	return r, g, b
}
