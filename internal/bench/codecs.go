package bench

import (
	"bytes"
	"io"
	"io/ioutil"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

func init() {
	RegisterCodec("xz", encodeXZ, decodeXZ)
	RegisterCodec("flate", encodeKlauspostFlate, decodeKlauspostFlate)
}

func encodeXZ(w io.Writer, src []byte) error {
	zw, err := xz.NewWriter(w)
	if err != nil {
		return err
	}
	if _, err := zw.Write(src); err != nil {
		return err
	}
	return zw.Close()
}

func decodeXZ(r io.Reader) ([]byte, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return ioutil.ReadAll(zr)
}

func encodeKlauspostFlate(w io.Writer, src []byte) error {
	zw, err := kflate.NewWriter(w, kflate.DefaultCompression)
	if err != nil {
		return err
	}
	if _, err := zw.Write(src); err != nil {
		return err
	}
	return zw.Close()
}

func decodeKlauspostFlate(r io.Reader) ([]byte, error) {
	zr := kflate.NewReader(r)
	defer zr.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
