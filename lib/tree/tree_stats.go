package tree

import (
	"context"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TreeStatsName = "xtree"

	zigRotation = "zig"
	zagRotation = "zag"
)

type treeStats struct {
	insertCount   metric.Int64Counter
	removeCount   metric.Int64Counter
	rotationCount metric.Int64Counter
	size          metric.Int64UpDownCounter
	zigAttrs      metric.AddOption
	zagAttrs      metric.AddOption
}

func newTreeStats(kind TreeKind, name string) *treeStats {
	meter := otel.Meter(TreeStatsName + "/" + kind.String() + "/" + name)
	return &treeStats{
		insertCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.insert.count",
			metric.WithDescription("The number of inserted entries"),
		)),
		removeCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.remove.count",
			metric.WithDescription("The number of removed entries"),
		)),
		rotationCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xtree.rotation.count",
			metric.WithDescription("The number of single rotations"),
		)),
		size: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xtree.size",
			metric.WithDescription("The number of entries in tree"),
		)),
		zigAttrs: metric.WithAttributeSet(attribute.NewSet(attribute.String("xtree.rotation", zigRotation))),
		zagAttrs: metric.WithAttributeSet(attribute.NewSet(attribute.String("xtree.rotation", zagRotation))),
	}
}

func (stats *treeStats) inserted() {
	if stats == nil {
		return
	}
	stats.insertCount.Add(context.Background(), 1)
	stats.size.Add(context.Background(), 1)
}

func (stats *treeStats) removed() {
	if stats == nil {
		return
	}
	stats.removeCount.Add(context.Background(), 1)
	stats.size.Add(context.Background(), -1)
}

func (stats *treeStats) rotated(rotation string) {
	if stats == nil {
		return
	}
	opt := stats.zigAttrs
	if rotation == zagRotation {
		opt = stats.zagAttrs
	}
	stats.rotationCount.Add(context.Background(), 1, opt)
}

func (stats *treeStats) released(size int64) {
	if stats == nil || size <= 0 {
		return
	}
	stats.size.Add(context.Background(), -size)
}
