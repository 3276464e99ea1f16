// Package hubwalk builds the query graph a random-walk evaluator runs on:
// 500 nodes, at most 3 out-edges each, at most 1000 edges in total, every
// weight in (0, 10].
//
// 🚀 What is hubwalk?
//
//	An offline optimiser that replaces the initial graph with one built from
//	a hub / mid / leaf tier partition of the node ids:
//		• Builders: hub-weighted, hub-uniform, hub-cycle, hub-weighted-cycle,
//		  hub-weighted-visitall and a deterministic path
//		• Constraint validator: advisory, reports every violated category
//		• Score: BFS reachability and likeliest-walk probability against
//		  recorded query results
//		• Metrics: Prometheus textfile export of one run
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — directed weighted Graph, canonical node ids, JSON codec
//	builder/     — tier partition, sampling and the graph constructors
//	constraints/ — structural limits, Verify / Check / Log
//	results/     — tolerant loader for recorded query results
//	bfs/         — directed breadth-first search
//	dijkstra/    — cheapest paths under weight or transition costs
//	score/       — structural diagnostic of a graph against results
//	metrics/     — per-run Prometheus registry
//	config/      — viper / YAML / env configuration, validated
//	optimize/    — load, build, verify, score and save
//	cmd/hubwalk/ — cobra CLI
//
// Quick ASCII example of the default tiers:
//
//	hubs [0,50) ──► 2 hubs, 1 mid           (3 edges each)
//	mids [50,450) ──► 2 distinct targets    (2 edges each)
//	leaves [450,500) ──► 1 hub or mid       (1 edge each)
//
//	go install github.com/katalvlaran/hubwalk/cmd/hubwalk@latest
package hubwalk
