// File: permute/example_test.go
package permute_test

import (
	"fmt"

	"github.com/katalvlaran/pixshuffle/permute"
)

// ExampleEncrypt obfuscates a 2×1 image. Offset(2,1) is 1, so the two
// pixels trade places; Decrypt puts them back.
func ExampleEncrypt() {
	pix := []uint8{
		255, 0, 0, 255, // red
		0, 0, 255, 255, // blue
	}
	enc, _ := permute.Encrypt(pix, 2, 1)
	fmt.Println(enc)

	dec, _ := permute.Decrypt(enc, 2, 1)
	fmt.Println(dec)

	// Output:
	// [0 0 255 255 255 0 0 255]
	// [255 0 0 255 0 0 255 255]
}

// ExampleTransform shows the raw transform over an explicit walk.
func ExampleTransform() {
	path := []int{0, 3, 4, 5, 2, 1} // gilbert.Indices(3, 2)
	pix := make([]uint8, 0, 24)
	for i := 0; i < 6; i++ {
		pix = append(pix, uint8(i), 0, 0, 255)
	}

	out, _ := permute.Transform(pix, path, permute.Offset(3, 2), permute.Forward)
	for i := 0; i < 6; i++ {
		fmt.Print(out[i*4], " ")
	}
	fmt.Println()

	// Output:
	// 4 3 0 5 2 1
}
