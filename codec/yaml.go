package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dop251/jsarray"
)

// DecodeYAML parses the first document of data. Sequences become arrays and
// mappings become objects keeping the key order of the document. An alias
// decodes to the same container as its anchor. An empty document is null.
func DecodeYAML(data []byte) (jsarray.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return jsarray.Null(), nil
	}
	d := &yamlDecoder{seen: make(map[*yaml.Node]jsarray.Value)}
	return d.decode(&doc, 0)
}

type yamlDecoder struct {
	seen map[*yaml.Node]jsarray.Value
}

func (d *yamlDecoder) decode(n *yaml.Node, depth int) (jsarray.Value, error) {
	if depth >= MaxNesting {
		return nil, ErrTooDeep
	}
	if v, ok := d.seen[n]; ok {
		return v, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return jsarray.Null(), nil
		}
		return d.decode(n.Content[0], depth)
	case yaml.AliasNode:
		return d.decode(n.Alias, depth)
	case yaml.SequenceNode:
		a := jsarray.NewArray()
		d.seen[n] = a
		for _, item := range n.Content {
			v, err := d.decode(item, depth+1)
			if err != nil {
				return nil, err
			}
			if err := a.Push(v); err != nil {
				return nil, err
			}
		}
		return a, nil
	case yaml.MappingNode:
		o := jsarray.NewObject()
		d.seen[n] = o
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, item := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			v, err := d.decode(item, depth+1)
			if err != nil {
				return nil, err
			}
			o.PutStr(k.Value, v)
		}
		return o, nil
	case yaml.ScalarNode:
		return decodeScalar(n)
	}
	return nil, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
}

func decodeScalar(n *yaml.Node) (jsarray.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return jsarray.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return jsarray.BoolValue(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return jsarray.IntValue(i), nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return jsarray.FloatValue(f), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return jsarray.FloatValue(f), nil
	}
	return jsarray.StringValue(n.Value), nil
}
