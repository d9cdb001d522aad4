// Package contactconv converts address-book contacts between VCard, CSV and
// JSON (plus msgpack, CBOR and protobuf archives).
//
// Components:
//   - contact: the canonical model, an ordered list of ordered key/value maps.
//   - codec: one Codec[contact.List] per on-disk format.
//   - normalize: optional passes over the model (quoted-printable decoding,
//     phone-key reduction), always applied in that order.
//
// Pipeline:
//
//	read <path> -> decode -> [quoted-printable] -> [phone reduce] -> encode -> write <path>.<ext>
//
// The output extension is appended, never substituted: converting
// "book.vcf" to CSV writes "book.vcf.csv". Everything is decoded and encoded
// in memory first; the output file is replaced atomically, so a failed
// conversion never leaves a truncated or half-written file behind.
package contactconv
