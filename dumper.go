package forte

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

type forthDumper struct {
	f   *Forth
	out io.Writer

	nameWidth int
}

func (dump forthDumper) dump() error {
	bw := bufio.NewWriter(dump.out)
	fmt.Fprintf(bw, "# Forth Dump\n")
	fmt.Fprintf(bw, "  stack: %v\n", dump.f.stack)
	dump.dumpWords(bw)
	return bw.Flush()
}

func (dump *forthDumper) dumpWords(w io.Writer) {
	names := dump.f.Words()
	fmt.Fprintf(w, "# Words (%v)\n", len(names))
	if dump.nameWidth == 0 {
		for _, name := range names {
			if n := len(name); n > dump.nameWidth {
				dump.nameWidth = n
			}
		}
	}
	for _, name := range names {
		ent := dump.f.words[name]
		fmt.Fprintf(w, "  %-*s x%v %v (%v tokens)\n",
			dump.nameWidth, name, ent.multiplier, strconv.Quote(ent.body), ent.size())
	}
}
