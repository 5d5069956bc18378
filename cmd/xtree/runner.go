package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
	"github.com/benz9527/xtree/xlog"
)

type runner struct {
	logger xlog.XLogger
	out    io.Writer
	tree   tree.Tree[int, string]
}

func newTree(cfg *config, logger xlog.XLogger) (tree.Tree[int, string], error) {
	kind, err := tree.ParseTreeKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	opts := []tree.TreeOption[int, string]{
		tree.WithTreeLogger[int, string](logger.Named("tree")),
		tree.WithTreeStats[int, string]("cli"),
	}
	if cfg.Desc {
		opts = append(opts, tree.WithTreeDesc[int, string]())
	}
	if cfg.Check {
		opts = append(opts, tree.WithTreeInvariantCheck[int, string]())
	}
	return tree.NewTree[int, string](kind, opts...)
}

func newRunner(logger xlog.XLogger, out io.Writer, t tree.Tree[int, string]) *runner {
	return &runner{
		logger: logger,
		out:    out,
		tree:   t,
	}
}

func (r *runner) replay(sc *scenario) error {
	for i, op := range sc.Ops {
		if err := r.apply(op); err != nil {
			return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("step %d (%s)", i, op.Op))
		}
		if err := r.tree.Validate(); err != nil {
			r.logger.ErrorStack(err, "tree invalid", zap.Int("step", i), zap.String("op", op.Op))
			return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("step %d (%s)", i, op.Op))
		}
		r.logger.Debug("op applied",
			zap.Int("step", i),
			zap.String("op", op.Op),
			zap.Int64("size", r.tree.Len()),
			zap.Int("height", r.tree.Height()),
		)
	}
	r.print()
	return nil
}

func (r *runner) apply(op operation) error {
	switch op.Op {
	case opInsert:
		var err error
		for i, key := range op.Keys {
			if i < len(op.Values) {
				err = r.tree.Insert(key, op.Values[i])
			} else {
				err = r.tree.InsertKey(key)
			}
			if err != nil {
				return err
			}
		}
	case opRemove:
		for _, key := range op.Keys {
			if _, ok := r.tree.Remove(key); !ok {
				r.logger.Warn("key not found", zap.Int("key", key))
			}
		}
	case opRemoveMin:
		if e, ok := r.tree.RemoveMin(); ok {
			r.logger.Debug("min removed", zap.Stringer("entry", e))
		}
	case opSearch:
		for _, key := range op.Keys {
			if e, ok := r.tree.Search(key); ok {
				_, _ = fmt.Fprintf(r.out, "search %d: %s\n", key, e)
			} else {
				_, _ = fmt.Fprintf(r.out, "search %d: <missing>\n", key)
			}
		}
	default:
		return infra.NewErrorStack("unknown op " + op.Op)
	}
	return nil
}

func (r *runner) print() {
	entries := make([]string, 0, r.tree.Len())
	for e := range r.tree.Entries() {
		entries = append(entries, e.String())
	}
	_, _ = fmt.Fprintf(r.out, "kind: %s\n", r.tree.Kind())
	_, _ = fmt.Fprintf(r.out, "size: %d\n", r.tree.Len())
	_, _ = fmt.Fprintf(r.out, "height: %d\n", r.tree.Height())
	_, _ = fmt.Fprintf(r.out, "entries: %s\n", strings.Join(entries, " "))
	_, _ = fmt.Fprintln(r.out, r.tree.String())
}
