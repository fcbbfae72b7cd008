package lsb
import (
	"fmt"
	"bytes"
	"encoding/binary"

	"github.com/icza/bitio"

	"github.com/jasonkimprojects/easylsb/stegano/img"
)

const (
	BitsPerByte = 8
	NumLengthBits = 16
	MaxMsgLength = 65535

	// bit planes per channel, one per wraparound
	MaxPlanes = 8
)

/*
 * The frame is the 16-bit big-endian message length in bytes followed
 * by the message itself, every byte emitted most significant bit first.
 * There is no marker and no checksum: extracting from an image nobody
 * embedded into yields garbage with no error. Callers must not treat
 * the output as verified.
 */

// total embeddable bits of an image: 3 channels per pixel, one bit
// per channel per plane.
func Capacity( width, height int, planes uint ) uint64 {
	if planes == 0 || planes > MaxPlanes {
		planes = MaxPlanes
	}
	return uint64(width) * uint64(height) * 3 * uint64(planes)
}

// CheckSize runs before any traversal, for both embedding and
// extraction. Nothing is mutated when it fails.
func CheckSize( msgLen int, width, height int, planes uint ) error {
	if msgLen > MaxMsgLength {
		return &CapacityError{ "Message length exceeds maximum of 65535 bytes!" }
	}
	required := uint64(NumLengthBits) + uint64(msgLen) * BitsPerByte
	available := Capacity( width, height, planes )
	if required > available {
		return &CapacityError{ fmt.Sprintf(
			"Image is not large enough to hold message! (need %d bits, have %d)",
			required, available ) }
	}
	return nil
}

/*
 * Embed writes the frame into the grid, least significant bits first.
 * Exactly the bits visited by the accessor change, every other bit of
 * every channel is preserved. Bits land at the bit position equal to
 * the current wraparound count, so a message which outgrows the LSB
 * plane continues in the next plane up.
 */
func Embed( grid *img.PixelGrid, msg []byte, planes uint ) error {
	if planes == 0 || planes > MaxPlanes {
		planes = MaxPlanes
	}
	if err := CheckSize( len(msg), grid.Width(), grid.Height(), planes ); err != nil {
		return err
	}

	frame := new(bytes.Buffer)
	binary.Write( frame, binary.BigEndian, uint16(len(msg)) )
	frame.Write( msg )

	reader := bitio.NewReader( frame )
	c := NewChannelAccessor( grid )
	totalBits := NumLengthBits + len(msg) * BitsPerByte
	for i := 0; i < totalBits; i++ {
		bit, err := reader.ReadBool()
		if err != nil {
			return err
		}
		w := c.Wraparounds()
		encodingBit := uint8(0)
		if bit {
			// shift by the wraparound count to land in the right plane
			encodingBit = 1 << w
		}
		c.Replace( (c.Channel() & WrapMask(w)) | encodingBit )
		c.Next()
	}
	return nil
}

/*
 * Extract inverts Embed bit for bit: isolate the target bit, normalize
 * it down from the current plane, reassemble most significant bit
 * first. The grid is never mutated. The capacity check runs twice,
 * once up front so even the length field fits, and again once the
 * declared length is known, which rejects lengths a foreign image
 * cannot actually hold.
 */
func Extract( grid *img.PixelGrid, planes uint ) ([]byte, error) {
	if planes == 0 || planes > MaxPlanes {
		planes = MaxPlanes
	}
	if err := CheckSize( 0, grid.Width(), grid.Height(), planes ); err != nil {
		return nil, err
	}

	c := NewChannelAccessor( grid )
	var length uint16
	for i := 0; i < NumLengthBits; i++ {
		w := c.Wraparounds()
		bit := (c.Channel() & BitMask(w)) >> w
		length |= uint16(bit) << (NumLengthBits - 1 - i)
		c.Next()
	}

	// the declared length may be garbage on a non-embedded image
	if err := CheckSize( int(length), grid.Width(), grid.Height(), planes ); err != nil {
		return nil, err
	}

	out := new(bytes.Buffer)
	writer := bitio.NewWriter( out )
	for i := 0; i < int(length) * BitsPerByte; i++ {
		w := c.Wraparounds()
		bit := (c.Channel() & BitMask(w)) >> w
		if err := writer.WriteBool( bit == 1 ); err != nil {
			return nil, err
		}
		c.Next()
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

/*
 * Container-level wrappers: sniff the decoy format, run the codec over
 * its pixel grid and serialize the result back into the same format.
 */
func Hide( decoy, msg []byte, planes uint ) ([]byte, error) {
	grid, format, err := img.Load( decoy )
	if err != nil {
		return nil, err
	}
	if err = Embed( grid, msg, planes ); err != nil {
		return nil, err
	}
	return img.Save( grid, format )
}

func Reveal( decoy []byte, planes uint ) ([]byte, error) {
	grid, _, err := img.Load( decoy )
	if err != nil {
		return nil, err
	}
	return Extract( grid, planes )
}
