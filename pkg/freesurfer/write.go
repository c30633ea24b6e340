package freesurfer

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteSurface encodes s in the triangle surface format.
func WriteSurface(w io.Writer, s *Surface) error {
	bw := bufio.NewWriter(w)
	bw.Write(surfaceMagic[:])
	fmt.Fprintf(bw, "%s\n\n", s.Comment)
	for _, v := range []any{int32(s.VertexCount()), int32(s.FaceCount()), s.Vertices, s.Faces} {
		if err := binary.Write(bw, byteOrder, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCurv encodes c in the "new" curv format.
func WriteCurv(w io.Writer, c *Curv) error {
	bw := bufio.NewWriter(w)
	bw.Write(curvMagic[:])
	for _, v := range []any{int32(len(c.Data)), int32(c.FaceCount), int32(1), c.Data} {
		if err := binary.Write(bw, byteOrder, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLabel encodes l as an ASCII label.
func WriteLabel(w io.Writer, l *Label) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "#%s\n%d\n", l.Comment, l.Len())
	for i, v := range l.Vertices {
		var c [3]float32
		if i < len(l.Coords) {
			c = l.Coords[i]
		}
		fmt.Fprintf(bw, "%d  %.3f  %.3f  %.3f %.10f\n", v, c[0], c[1], c[2], l.Values[i])
	}
	return bw.Flush()
}

// WriteAnnot encodes a with a version 2 color table.
func WriteAnnot(w io.Writer, a *Annot) error {
	bw := bufio.NewWriter(w)
	put := func(vals ...any) {
		for _, v := range vals {
			binary.Write(bw, byteOrder, v)
		}
	}
	putString := func(s string) {
		put(int32(len(s) + 1))
		bw.WriteString(s)
		bw.WriteByte(0)
	}

	put(int32(len(a.Labels)))
	for i, label := range a.Labels {
		put(int32(i), label)
	}
	put(int32(1), int32(-1), int32(len(a.ColorTable.Regions)))
	putString(a.ColorTable.Filename)
	put(int32(len(a.ColorTable.Regions)))
	for _, r := range a.ColorTable.Regions {
		put(r.Index)
		putString(r.Name)
		put(r.R, r.G, r.B, r.T)
	}
	return bw.Flush()
}
