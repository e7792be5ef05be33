// Package rmapio provides binary raster persistence in this codebase's
// .rmap convention: a small length-prefixed little-endian framing of
// (cols, rows, nodata, row-major payload). It mirrors writers.go's
// binary.Write-into-a-buffer-then-write-the-file approach and the .rmap
// naming used throughout model/*.go (mmio.WriteRMAP/ReadBinaryRMAP). It is
// a convenience for the CLI and tests — the flat-resolution core never
// touches disk.
package rmapio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/hydrocorrect/raster"
)

func writeHeader(buf *bytes.Buffer, w, h int, nodata float64) error {
	for _, v := range []any{int32(w), int32(h), nodata} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFloat64 writes a *raster.Raster[float64] to fp.
func WriteFloat64(fp string, r *raster.Raster[float64]) error {
	buf := new(bytes.Buffer)
	if err := writeHeader(buf, r.W, r.H, r.NoData); err != nil {
		return fmt.Errorf("rmapio.WriteFloat64 %s: %v", fp, err)
	}
	if err := binary.Write(buf, binary.LittleEndian, r.Data()); err != nil {
		return fmt.Errorf("rmapio.WriteFloat64 %s: %v", fp, err)
	}
	return os.WriteFile(fp, buf.Bytes(), 0644)
}

// WriteFloat32 writes a *raster.Raster[float32] to fp.
func WriteFloat32(fp string, r *raster.Raster[float32]) error {
	buf := new(bytes.Buffer)
	if err := writeHeader(buf, r.W, r.H, float64(r.NoData)); err != nil {
		return fmt.Errorf("rmapio.WriteFloat32 %s: %v", fp, err)
	}
	if err := binary.Write(buf, binary.LittleEndian, r.Data()); err != nil {
		return fmt.Errorf("rmapio.WriteFloat32 %s: %v", fp, err)
	}
	return os.WriteFile(fp, buf.Bytes(), 0644)
}

// WriteInt32 writes a *raster.Raster[int32] to fp.
func WriteInt32(fp string, r *raster.Raster[int32]) error {
	buf := new(bytes.Buffer)
	if err := writeHeader(buf, r.W, r.H, float64(r.NoData)); err != nil {
		return fmt.Errorf("rmapio.WriteInt32 %s: %v", fp, err)
	}
	if err := binary.Write(buf, binary.LittleEndian, r.Data()); err != nil {
		return fmt.Errorf("rmapio.WriteInt32 %s: %v", fp, err)
	}
	return os.WriteFile(fp, buf.Bytes(), 0644)
}

func readHeader(fp string) (w, h int, nodata float64, body *bytes.Reader, err error) {
	b, err := os.ReadFile(fp)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("rmapio.read %s: %v", fp, err)
	}
	buf := bytes.NewReader(b)
	var w32, h32 int32
	if err := binary.Read(buf, binary.LittleEndian, &w32); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("rmapio.read %s: %v", fp, err)
	}
	if err := binary.Read(buf, binary.LittleEndian, &h32); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("rmapio.read %s: %v", fp, err)
	}
	if err := binary.Read(buf, binary.LittleEndian, &nodata); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("rmapio.read %s: %v", fp, err)
	}
	return int(w32), int(h32), nodata, buf, nil
}

// ReadFloat64 reads a *raster.Raster[float64] previously written by WriteFloat64.
func ReadFloat64(fp string) (*raster.Raster[float64], error) {
	w, h, nodata, body, err := readHeader(fp)
	if err != nil {
		return nil, err
	}
	r := raster.New[float64](w, h, nodata, nodata)
	if err := binary.Read(body, binary.LittleEndian, r.Data()); err != nil {
		return nil, fmt.Errorf("rmapio.ReadFloat64 %s: %v", fp, err)
	}
	return r, nil
}

// ReadFloat32 reads a *raster.Raster[float32] previously written by WriteFloat32.
func ReadFloat32(fp string) (*raster.Raster[float32], error) {
	w, h, nodata, body, err := readHeader(fp)
	if err != nil {
		return nil, err
	}
	r := raster.New[float32](w, h, float32(nodata), float32(nodata))
	if err := binary.Read(body, binary.LittleEndian, r.Data()); err != nil {
		return nil, fmt.Errorf("rmapio.ReadFloat32 %s: %v", fp, err)
	}
	return r, nil
}

// ReadInt32 reads a *raster.Raster[int32] previously written by WriteInt32.
func ReadInt32(fp string) (*raster.Raster[int32], error) {
	w, h, nodata, body, err := readHeader(fp)
	if err != nil {
		return nil, err
	}
	r := raster.New[int32](w, h, int32(nodata), int32(nodata))
	if err := binary.Read(body, binary.LittleEndian, r.Data()); err != nil {
		return nil, fmt.Errorf("rmapio.ReadInt32 %s: %v", fp, err)
	}
	return r, nil
}
