package campaign

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// patch builds the JSON object merged into a stored campaign document.
// The first failing set sticks and is reported by bytes.
type patch struct {
	doc  []byte
	keys int
	err  error
}

func newPatch() *patch {
	return &patch{doc: []byte("{}")}
}

func (p *patch) set(key string, value any) *patch {
	if p.err == nil {
		p.doc, p.err = sjson.SetBytes(p.doc, key, value)
		p.keys++
	}

	return p
}

func (p *patch) null(key string) *patch {
	if p.err == nil {
		p.doc, p.err = sjson.SetRawBytes(p.doc, key, []byte("null"))
		p.keys++
	}

	return p
}

func (p *patch) empty() bool { return p.keys == 0 }

func (p *patch) bytes() ([]byte, error) {
	if p.err != nil {
		return nil, fmt.Errorf("could not build campaign patch: %w", p.err)
	}

	return p.doc, nil
}
