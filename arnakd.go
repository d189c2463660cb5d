// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/arnak/arnakd/chaincfg"
	"github.com/arnak/arnakd/notify"
	"github.com/davecgh/go-spew/spew"
)

// showHeight writes the consensus rules params applies at height.
func showHeight(w io.Writer, params *chaincfg.Params, height int32) {
	epoch := params.CurrentEpoch(height)
	fmt.Fprintf(w, "network:           %s\n", params.Name)
	fmt.Fprintf(w, "height:            %d\n", height)
	fmt.Fprintf(w, "epoch:             %s\n", epoch)
	fmt.Fprintf(w, "branch id:         %08x\n", params.CurrentBranchID(height))
	fmt.Fprintf(w, "activation height: %v\n",
		params.Upgrades.IsActivationHeightForAnyUpgrade(height))
	fmt.Fprintf(w, "target spacing:    %v\n", params.TargetTimePerBlock(height))
	fmt.Fprintf(w, "halving interval:  %d\n", params.HalvingInterval(height))

	if next, ok := params.Upgrades.NextEpoch(height); ok {
		fmt.Fprintf(w, "next upgrade:      %s at %d\n", next,
			params.Upgrades[next].ActivationHeight)
	} else {
		fmt.Fprintf(w, "next upgrade:      none\n")
	}

	if hash, ok := params.CheckpointHash(height); ok {
		fmt.Fprintf(w, "checkpoint:        %v\n", hash)
	}

	switch {
	case params.FoundersRewardDisabled:
		fmt.Fprintf(w, "founders reward:   disabled\n")
	case height > params.LastFoundersRewardBlockHeight(height):
		fmt.Fprintf(w, "founders reward:   ended at %d\n",
			params.LastFoundersRewardBlockHeight(height))
	default:
		addr, err := params.FoundersRewardAddressAtHeight(height)
		if err != nil {
			fmt.Fprintf(w, "founders reward:   %v\n", err)
			return
		}
		script, err := params.FoundersRewardScriptAtHeight(height)
		if err != nil {
			fmt.Fprintf(w, "founders reward:   %v\n", err)
			return
		}
		fmt.Fprintf(w, "founders reward:   %s (%s)\n", addr,
			hex.EncodeToString(script))
	}
}

// arnakdMain is the real main function for arnakd.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func arnakdMain() error {
	// Load configuration and parse command line.  This function also
	// initializes logging and configures it accordingly.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	// Get a channel that will be closed when a shutdown signal has been
	// triggered either from an OS signal such as SIGINT (Ctrl+C) or from
	// another subsystem.
	interrupt := interruptListener()
	defer arkdLog.Info("Shutdown complete")

	if err := chaincfg.SelectParams(cfg.network, cfg.selectOpts); err != nil {
		arkdLog.Errorf("Unable to select network parameters: %v", err)
		return err
	}
	params := chaincfg.ActiveParams()

	if cfg.DumpParams {
		fmt.Print(spew.Sdump(params))
		return nil
	}
	if cfg.ShowHeight != noHeight {
		showHeight(os.Stdout, params, cfg.ShowHeight)
		return nil
	}

	arkdLog.Infof("Network %s, magic %08x, port %s, genesis %v", params.Name,
		uint32(params.Magic), params.DefaultPort, params.GenesisHash)
	for idx := chaincfg.UpgradeBaseSprout + 1; idx < chaincfg.DefinedUpgrades; idx++ {
		upgrade := &params.Upgrades[idx]
		if upgrade.ActivationHeight == chaincfg.NoActivationHeight {
			arkdLog.Debugf("%s is not scheduled", idx)
			continue
		}
		arkdLog.Debugf("%s activates at height %d (branch id %08x)", idx,
			upgrade.ActivationHeight, idx.BranchID())
	}

	// Return now if an interrupt signal was triggered.
	if interruptRequested(interrupt) {
		return nil
	}

	notifier := notify.New(&cfg.notifyCfg)
	if notifier != nil {
		if err := notifier.Initialize(); err != nil {
			arkdLog.Errorf("Unable to start notifications: %v", err)
			return err
		}
		defer func() {
			arkdLog.Infof("Gracefully shutting down notifications...")
			notifier.Shutdown()
		}()
	}

	// Wait until the interrupt signal is received from an OS signal or
	// shutdown is requested through one of the subsystems.
	<-interrupt
	return nil
}

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := arnakdMain(); err != nil {
		os.Exit(1)
	}
}
