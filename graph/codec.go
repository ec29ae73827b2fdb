package graph

import (
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the stable wire form of a Graph used by the scan cache.
type snapshot struct {
	Entities []*Entity `msgpack:"entities"`
}

// Marshal encodes the graph into a compact binary snapshot.
func Marshal(g *Graph) ([]byte, error) {
	return msgpack.Marshal(snapshot{Entities: g.entities})
}

// Unmarshal decodes a snapshot produced by Marshal.
func Unmarshal(data []byte) (*Graph, error) {
	var s snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	g := &Graph{entities: s.Entities, index: make(map[string]*Entity, len(s.Entities))}
	for _, e := range s.Entities {
		if e.Relations == nil {
			e.Relations = make(map[string]*Edge)
		}
		g.index[e.Metadata.Class] = e
	}
	return g, nil
}
