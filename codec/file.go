// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pivkit/field"
)

// Encode marshals v with Default and writes it to w through compression c.
func Encode(w io.Writer, v any, c CompressionType) error {
	data, err := Default.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec: %s marshal: %w", Default.Name(), err)
	}
	cw, err := compressor(w, c)
	if err != nil {
		return err
	}
	if _, err := cw.Write(data); err != nil {
		return errors.Join(err, cw.Close())
	}

	return cw.Close()
}

// Decode reads r through compression c and unmarshals it into v with Default.
func Decode(r io.Reader, v any, c CompressionType) error {
	rc, err := decompressor(r, c)
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("codec: %s: %w", c, err)
	}
	if err := Default.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: %s unmarshal: %w", Default.Name(), err)
	}

	return nil
}

// ReadField loads and validates a vector field from path.
func ReadField(path string) (*field.Field, error) {
	var v Vector
	if err := readFile(path, &v); err != nil {
		return nil, err
	}
	f, err := v.Field()
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return f, nil
}

// WriteField stores f at path.
func WriteField(path string, f *field.Field) error {
	return writeFile(path, FromField(f))
}

// ReadScalar loads a scalar field from path.
func ReadScalar(path string) (Scalar, error) {
	var s Scalar
	err := readFile(path, &s)

	return s, err
}

// WriteScalar stores s at path.
func WriteScalar(path string, s Scalar) error {
	return writeFile(path, s)
}

func readFile(path string, v any) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := Decode(fh, v, CompressionFor(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func writeFile(path string, v any) (err error) {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(fh, v, CompressionFor(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
