package hexdump

import (
	"fmt"
	"io"
	"log"
	"strings"
)

const (
	// bytes requested per read; one memory page
	ChunkSize = 4096
	// bytes rendered per output line
	RowWidth = 16
)

type Dumper struct {
	chunk   []byte
	row     []byte
	offset  uint64
	debug   bool
	verbose bool
}

func NewDumper() *Dumper {
	return &Dumper{
		chunk:   make([]byte, ChunkSize),
		row:     make([]byte, 0, RowWidth),
		debug:   ViperGetBool("debug"),
		verbose: ViperGetBool("verbose"),
	}
}

// Dump reads src until EOF, writing one formatted line to sink for each
// RowWidth bytes.  A row begun at the end of one read is completed from
// the next, so read boundaries never affect the output.
func (d *Dumper) Dump(src io.Reader, sink io.Writer) error {
	d.offset = 0
	d.row = d.row[:0]
	for {
		count, err := src.Read(d.chunk)
		if d.debug {
			log.Printf("Dump: read %d bytes at offset %d\n", count, d.offset+uint64(len(d.row)))
		}
		if count > 0 {
			werr := d.consume(d.chunk[:count], sink)
			if werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			ferr := d.flush(sink)
			if ferr == nil && d.verbose {
				log.Printf("Dump: %d bytes\n", d.offset)
			}
			return ferr
		}
		if err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
	}
}

func (d *Dumper) consume(data []byte, sink io.Writer) error {
	for len(data) > 0 {
		space := RowWidth - len(d.row)
		if space > len(data) {
			space = len(data)
		}
		d.row = append(d.row, data[:space]...)
		data = data[space:]
		if len(d.row) == RowWidth {
			err := d.emit(sink)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dumper) flush(sink io.Writer) error {
	if len(d.row) == 0 {
		return nil
	}
	return d.emit(sink)
}

func (d *Dumper) emit(sink io.Writer) error {
	_, err := io.WriteString(sink, FormatRow(d.offset, d.row))
	if err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	d.offset += uint64(len(d.row))
	d.row = d.row[:0]
	return nil
}

// FormatRow renders one line: offset, RowWidth hex byte groups, ASCII
// column.  A short row is space-padded in the hex column so the ASCII
// column stays aligned; the ASCII column holds one character per byte.
func FormatRow(offset uint64, row []byte) string {
	var output strings.Builder
	output.WriteString(fmt.Sprintf("%08x  ", offset))
	for j := 0; j < RowWidth; j++ {
		if j < len(row) {
			output.WriteString(fmt.Sprintf("%02X ", row[j]))
		} else {
			output.WriteString("   ")
		}
	}
	output.WriteString(" |")
	for _, b := range row {
		if b < 0x20 || b > 0x7e {
			output.WriteByte('.')
		} else {
			output.WriteByte(b)
		}
	}
	output.WriteString("|\n")
	return output.String()
}
