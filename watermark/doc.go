// Package watermark stamps a short, low-contrast hexadecimal token into the
// bottom-right corner of a restored image.
//
// The ink colour is derived from the background under the text box: the
// mean colour's luminance L = 0.299R + 0.587G + 0.114B decides whether every
// channel is nudged down (L >= 128) or up (L < 128) by a small delta, and the
// glyphs are blended with slightly reduced alpha. The mark is readable when
// looked for and easy to miss otherwise.
//
// Stamping is a cosmetic post-process: it never touches the permutation and
// its failure never invalidates a decrypted image. Fonts load from TTF/OTF
// files; when that fails FaceOrDefault falls back to the built-in 7×13
// bitmap face.
package watermark
