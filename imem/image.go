// Package imem holds the instruction memory preload image.
package imem

import (
	"bufio"
	"fmt"
	"io"
)

// DEPTH is the number of words in instruction memory.
const DEPTH = 256

// Image is the preload content of instruction memory.
type Image [DEPTH]uint32

// WriteTo writes the image as DEPTH lines of "0x%08x".
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)

	for _, word := range img {
		var wrote int
		wrote, err = fmt.Fprintf(bw, "0x%08x\n", word)
		n += int64(wrote)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
