package inline

import (
	"encoding/json"
	"io"

	"github.com/reelroll-cli/reelroll/source"
)

type Output struct {
	// Filter lists the services the movies were matched against. Empty means all.
	Filter []string        `json:"filter"`
	Query  string          `json:"query,omitempty"`
	Pages  int             `json:"pages"`
	Result []*source.Movie `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Result == nil {
		output.Result = []*source.Movie{}
	}
	if output.Filter == nil {
		output.Filter = []string{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
