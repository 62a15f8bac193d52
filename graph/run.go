package graph

import (
	"github.com/metailurini/linkedlist"
	"github.com/metailurini/linkedlist/alloc"
	"github.com/metailurini/linkedlist/internal/glog"
)

// QueryResult pairs a query with its search result.
type QueryResult struct {
	Query
	Result
}

// Report summarizes a Run.
type Report struct {
	// Timing is the measured mean cost of one node Alloc and Free.
	Timing  alloc.Timing
	Results []QueryResult
}

// Found counts queries for which a path exists.
func (r Report) Found() int {
	n := 0
	for _, res := range r.Results {
		if res.Found {
			n++
		}
	}
	return n
}

// Run measures the node allocator, then searches every query in order and
// estimates how much of each search was spent allocating and freeing.
func Run(g *Graph, queries []Query, opts ...Option) (Report, error) {
	cfg := buildConfig(opts)
	nodeAlloc := newNodeAllocator(cfg)

	for i := 0; i < cfg.warmups; i++ {
		alloc.Measure[linkedlist.Node](nodeAlloc, cfg.microIterations)
	}
	timing := alloc.Measure[linkedlist.Node](nodeAlloc, cfg.microIterations)
	glog.InfoF("average time [ns] per alloc: %d", timing.Alloc.Nanoseconds())
	glog.InfoF("average time [ns] per free: %d", timing.Free.Nanoseconds())

	total := len(queries)
	if cfg.maxQueries > 0 && cfg.maxQueries < total {
		total = cfg.maxQueries
	}

	report := Report{Timing: timing, Results: make([]QueryResult, 0, total)}
	for i, query := range queries[:total] {
		glog.InfoF("(%d / %d) searching for a connection between node %d -> %d", i+1, total, query.From, query.To)

		res, err := search(g, query.From, query.To, nodeAlloc)
		if err != nil {
			glog.ErrorPf("search %d -> %d: %v", query.From, query.To, err)
			return report, err
		}

		if res.Elapsed > 0 {
			res.AllocShare = float64(res.Allocs*timing.Alloc.Nanoseconds()) / float64(res.Elapsed.Nanoseconds())
			res.FreeShare = float64(res.Frees*timing.Free.Nanoseconds()) / float64(res.Elapsed.Nanoseconds())
		}

		if res.Found {
			glog.Info("path found")
		} else {
			glog.Info("no path found")
		}
		glog.InfoF("nodes visited: %d, elapsed: %s, alloc calls: %d, free calls: %d", res.Visited, res.Elapsed, res.Allocs, res.Frees)
		glog.InfoF("estimated time in alloc: %.3f%%, in free: %.3f%%", 100*res.AllocShare, 100*res.FreeShare)

		report.Results = append(report.Results, QueryResult{Query: query, Result: res})
	}

	glog.Info("all work complete")
	return report, nil
}
