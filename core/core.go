// Package core implements the frequency-ranking engine: corpus config
// sync, corpus file imports, combined-rank aggregation and inter-corpus
// correlation. Persistence goes through contract.WordStore; the numeric
// routines live in core/algo.
package core
