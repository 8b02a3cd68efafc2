package networks

import (
	"os"
	"strings"
)

// Nodes returns the network's default nodes plus the one set in its node
// env var, if any.
func Nodes(network Network) map[string]string {
	nodes := map[string]string{}
	for name, url := range network.GetDefaultNodes() {
		nodes[name] = url
	}
	if network.GetNodeVariableName() == "" {
		return nodes
	}
	customNode := strings.Trim(os.Getenv(network.GetNodeVariableName()), " ")
	if customNode != "" {
		nodes["custom-node"] = customNode
	}
	return nodes
}
