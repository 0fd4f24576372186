package section

const (
	WideMask         = 0x0001 // Mask for coder bit (bit 0), set when units are 16-bit
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), set for big-endian
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicTextV1Opt identifies version 1 of the text blob format.
	MagicTextV1Opt = 0xCE10
)

const (
	HeaderSize    = 24         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the payload starts
)
