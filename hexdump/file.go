package hexdump

import (
	"fmt"
	"io"
	"log"
	"os"
)

// DumpFile dumps the file at pathname to sink and closes it.
func DumpFile(pathname string, sink io.Writer) error {
	if ViperGetBool("verbose") {
		log.Printf("DumpFile(%s)\n", pathname)
	}
	file, err := os.Open(pathname)
	if err != nil {
		return fmt.Errorf("open failed: %w", err)
	}
	dumper := NewDumper()
	err = dumper.Dump(file, sink)
	if err != nil {
		file.Close()
		return err
	}
	err = file.Close()
	if err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}
