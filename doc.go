// Package numstream is your in-memory playground for lazy numeric
// sequences — from generic pull-based pipelines to probabilistic
// number theory and online learning.
//
// 🚀 What is numstream?
//
//	A small, focused library that brings together:
//		• Lazy pipelines: generate, iterate, map, filter, take, reduce — all pull-based
//		• Deterministic PRNG streams: xorshift64* as a rand.Source64
//		• Collatz walks: eager paths and lazy unbounded walks
//		• Primality: randomized Miller–Rabin over arbitrary-precision integers
//		• Online regression: one-pass SGD calibration with a batch OLS cross-check
//
// ✨ Why choose numstream?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic by default – explicit seeds everywhere, reproducible streams
//   - No hidden state – every package is a pure function of its inputs
//   - Composable – everything speaks iter.Seq, so pipelines snap together
//
// Under the hood, everything is organized under five subpackages:
//
//	seq/       — generic lazy sequence combinators over iter.Seq
//	xorshift/  — xorshift64* generator, usable as a math/rand source
//	collatz/   — Collatz sequence walks with a step budget
//	primality/ — Miller–Rabin probabilistic primality testing
//	regress/   — online (SGD) and batch (OLS) linear regression
//
// Quick example:
//
//	g := xorshift.New(42)
//	evens := seq.Filter(seq.Take(g.Values(), 100), func(v uint64) bool { return v%2 == 0 })
//	fmt.Println(seq.Count(evens))
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/numstream
package numstream
