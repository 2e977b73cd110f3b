package sink

import (
	"encoding/json"

	"github.com/matzehuels/statebars/pkg/scene"
)

type jsonOutput struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Nodes  []jsonNode `json:"nodes"`
}

type jsonNode struct {
	Kind     string            `json:"kind"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Events   []string          `json:"events,omitempty"`
	Children []jsonNode        `json:"children,omitempty"`
}

// RenderJSON encodes root's children as indented JSON.
func RenderJSON(root *scene.Node, width, height float64) ([]byte, error) {
	out := jsonOutput{Width: width, Height: height, Nodes: []jsonNode{}}
	if root != nil {
		for _, c := range root.Children {
			out.Nodes = append(out.Nodes, toJSONNode(c))
		}
	}
	return json.MarshalIndent(out, "", "  ")
}

func toJSONNode(n *scene.Node) jsonNode {
	jn := jsonNode{Kind: string(n.Kind), Text: n.Text}
	if len(n.Attrs) > 0 {
		jn.Attrs = make(map[string]string, len(n.Attrs))
		for _, a := range n.Attrs {
			jn.Attrs[a.Name] = a.Value
		}
	}
	for _, ev := range n.Events() {
		jn.Events = append(jn.Events, string(ev))
	}
	for _, c := range n.Children {
		jn.Children = append(jn.Children, toJSONNode(c))
	}
	return jn
}
