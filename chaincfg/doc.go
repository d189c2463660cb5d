// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the consensus parameters of the arnak networks.
//
// Each network (main, test and regtest) is described by a Params value
// holding its genesis block, proof of work limits, subsidy schedule, address
// encodings, checkpoints and the activation schedule of every network upgrade.
// Params also answers the height dependent questions consensus code asks:
// which upgrade is active, which branch id applies, and which founders reward
// script a block must pay.
//
// The parameter sets live in a Registry.  Exactly one network is selected at
// startup and is then readable from any goroutine:
//
//	if err := chaincfg.SelectParams(chaincfg.TestNet, chaincfg.SelectOptions{}); err != nil {
//		// Handle error.
//	}
//	params := chaincfg.ActiveParams()
//	branchID := params.CurrentBranchID(height)
//
// The regression test network can additionally be reshaped through
// RegtestOverrides, either with SelectOptions at selection time or directly
// by test harnesses.
package chaincfg
