package aruco

// dict4x4 holds the payload bit patterns of the 4x4 dictionary family,
// row-major with the top-left module in the most significant bit. The
// 50-marker dictionary is the first 50 entries; the 100-marker dictionary
// extends it, so marker ids stay stable across dictionary sizes. Any two
// patterns (and their inverses) differ in at least four modules.
var dict4x4 = [100]uint16{
	0x7772, 0x9818, 0x3be3, 0x2eff, 0xd2cd,
	0xec93, 0xbb0a, 0x8adb, 0x3076, 0x92a4,
	0x30f8, 0xb786, 0x54ce, 0xb863, 0x46d2,
	0x231a, 0x1ccd, 0xcd68, 0x8406, 0x318d,
	0xf5b9, 0x346f, 0x8072, 0xc14e, 0x1194,
	0x4d80, 0x467c, 0x3a9c, 0x6afc, 0x1b53,
	0x3cd3, 0x851a, 0xd21a, 0xb14f, 0xb4ca,
	0xf8d5, 0x853d, 0x2b26, 0xad0e, 0xc6ef,
	0xfe3e, 0x59d2, 0xba52, 0x7e54, 0x9d79,
	0x5680, 0x4040, 0xd7fb, 0xbddd, 0x06a3,
	0x5ddc, 0xe6f1, 0xd215, 0x67c9, 0xdf6f,
	0x1e26, 0xb6d5, 0x2630, 0x5d31, 0x1f7a,
	0xe298, 0xf241, 0xcc57, 0xac38, 0x8af6,
	0xb560, 0xd6e2, 0x1f95, 0x8608, 0x3c8e,
	0x6c6d, 0x3fde, 0x66bb, 0xb9f1, 0x40cb,
	0xd653, 0xd721, 0x9c81, 0xee00, 0x2511,
	0xf030, 0x4a5a, 0x0213, 0x6db4, 0x7088,
	0xa743, 0x5fe8, 0xabfa, 0xee8f, 0x18aa,
	0x741e, 0x5f12, 0xa588, 0x04d8, 0xfbbc,
	0x4f66, 0x8cee, 0x2e17, 0xd056, 0x9e1f,
}
