package encoding

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
		want Info
	}{
		{"empty", nil, Info{Form: Unknown}},
		{"no bom", []byte("key: value\n"), Info{Form: UTF8}},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'a'}, Info{Form: UTF8, BOMSize: 3}},
		{"utf16 le", []byte{0xFF, 0xFE, 'a', 0}, Info{Form: UTF16LE, BOMSize: 2}},
		{"utf16 be", []byte{0xFE, 0xFF, 0, 'a'}, Info{Form: UTF16BE, BOMSize: 2}},
		{"utf32 le", []byte{0xFF, 0xFE, 0x00, 0x00, 'a'}, Info{Form: UTF32LE, BOMSize: 4}},
		{"utf32 be", []byte{0x00, 0x00, 0xFE, 0xFF, 'a'}, Info{Form: UTF32BE, BOMSize: 4}},
		{"bare utf32 le, no bom", []byte{0, 0, 0, 'a'}, Info{Form: UTF32LE}},
		{"bare utf32 be, no bom", []byte{'a', 0, 0, 0}, Info{Form: UTF32BE}},
		{"bare utf16 le, no bom", []byte{'a', 0, 'b', 0}, Info{Form: UTF16LE}},
		{"bare utf16 be, no bom", []byte{0, 'a', 0, 'b'}, Info{Form: UTF16BE}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Detect(c.buf)
			if got != c.want {
				t.Errorf("Detect(%v) = %+v, want %+v", c.buf, got, c.want)
			}
		})
	}
}
