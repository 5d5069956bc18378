package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benz9527/xtree/lib/infra"
)

const (
	opInsert    = "insert"
	opRemove    = "remove"
	opRemoveMin = "remove-min"
	opSearch    = "search"
)

type scenario struct {
	Kind string      `yaml:"kind"`
	Ops  []operation `yaml:"ops"`
}

type operation struct {
	Op   string `yaml:"op"`
	Keys []int  `yaml:"keys"`
	// Optional, aligned with keys. The keys without value are inserted as key only.
	Values []string `yaml:"values"`
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "read scenario")
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*scenario, error) {
	sc := &scenario{}
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "parse scenario")
	}
	for i, op := range sc.Ops {
		switch op.Op {
		case opInsert, opRemove, opSearch:
			if len(op.Values) > len(op.Keys) {
				return nil, infra.NewErrorStack(fmt.Sprintf("step %d: more values than keys", i))
			}
		case opRemoveMin:
		default:
			return nil, infra.NewErrorStack(fmt.Sprintf("step %d: unknown op %q", i, op.Op))
		}
	}
	return sc, nil
}
