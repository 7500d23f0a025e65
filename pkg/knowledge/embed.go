package knowledge

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed data/mandala.toml
var defaultTableTOML []byte

func defaultTableReader() io.Reader {
	return bytes.NewReader(defaultTableTOML)
}
