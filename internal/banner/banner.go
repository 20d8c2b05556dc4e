package banner

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed banner.txt
var banner string

func Print(w io.Writer) {
	_, _ = fmt.Fprintln(w, strings.TrimSpace(banner))
}
