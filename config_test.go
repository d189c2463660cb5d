// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnak/arnakd/chaincfg"
	"github.com/btcsuite/btclog"
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

// testArgs prefixes args with a configuration file that does not exist so
// the user's configuration never leaks into the tests.
func testArgs(t *testing.T, args ...string) []string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "missing.conf")
	return append([]string{"--configfile=" + configFile}, args...)
}

func TestParseConfigNetworks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		network chaincfg.NetworkID
		wantErr bool
	}{
		{name: "default", network: chaincfg.MainNet},
		{name: "testnet", args: []string{"--testnet"}, network: chaincfg.TestNet},
		{name: "regtest", args: []string{"--regtest"}, network: chaincfg.RegTest},
		{name: "both", args: []string{"--testnet", "--regtest"}, wantErr: true},
		{name: "unknown flag", args: []string{"--simnet"}, wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := parseConfig(testArgs(t, test.args...))
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.network, cfg.network)
			require.Equal(t, test.network.String(), filepath.Base(cfg.DataDir))
			require.Equal(t, test.network.String(), filepath.Base(cfg.LogDir))
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	t.Parallel()

	for _, arg := range []string{"-h", "--help"} {
		_, err := parseConfig(testArgs(t, arg))
		require.Error(t, err)

		flagsErr, ok := err.(*flags.Error)
		require.True(t, ok, "%s: %T", arg, err)
		require.Equal(t, flags.ErrHelp, flagsErr.Type)
		require.Contains(t, err.Error(), "Usage:")
		require.Contains(t, err.Error(), "--nuparams")
		require.Contains(t, err.Error(), "--regtest")
	}
}

func TestParseConfigFile(t *testing.T) {
	t.Parallel()

	configFile := filepath.Join(t.TempDir(), "arnakd.conf")
	contents := []byte("[Application Options]\nregtest=1\nnotifyhashblock=default\n")
	require.NoError(t, os.WriteFile(configFile, contents, 0600))

	cfg, err := parseConfig([]string{"--configfile=" + configFile,
		"--notifylisten=127.0.0.1:9999"})
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegTest, cfg.network)
	require.Equal(t, "127.0.0.1:9999", cfg.notifyCfg.HashBlock)
}

func TestParseConfigRegtestOptions(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(testArgs(t, "--regtest",
		"--regtestprotectcoinbase", "--developersetpoolsizezero",
		"--nuparams=5ba81b19:10", "--nuparams=Blossom:20"))
	require.NoError(t, err)
	require.True(t, cfg.selectOpts.RegtestProtectCoinbase)
	require.True(t, cfg.selectOpts.DeveloperSetPoolSizeZero)
	require.Equal(t, []chaincfg.UpgradeActivation{
		{Upgrade: chaincfg.UpgradeOverwinter, Height: 10},
		{Upgrade: chaincfg.UpgradeBlossom, Height: 20},
	}, cfg.selectOpts.UpgradeActivations)

	// The options must be accepted by the registry as parsed.
	registry := chaincfg.NewRegistry()
	require.NoError(t, registry.Select(cfg.network, cfg.selectOpts))
	params := registry.Active()
	require.True(t, params.CoinbaseMustBeProtected)
	require.True(t, params.ZIP209Enabled)
	require.Equal(t, int32(10),
		params.Upgrades[chaincfg.UpgradeOverwinter].ActivationHeight)
	require.Equal(t, int32(20),
		params.Upgrades[chaincfg.UpgradeBlossom].ActivationHeight)
}

func TestParseConfigRegtestOnly(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{
		{"--regtestprotectcoinbase"},
		{"--testnet", "--developersetpoolsizezero"},
		{"--nuparams=Sapling:5"},
	} {
		_, err := parseConfig(testArgs(t, args...))
		require.Error(t, err, "args %v", args)
	}
}

func TestParseNUParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   string
		want    chaincfg.UpgradeActivation
		wantErr bool
	}{
		{value: "76b809bb:100", want: chaincfg.UpgradeActivation{
			Upgrade: chaincfg.UpgradeSapling, Height: 100}},
		{value: "0x2bb40e60:-1", want: chaincfg.UpgradeActivation{
			Upgrade: chaincfg.UpgradeBlossom, Height: chaincfg.NoActivationHeight}},
		{value: "overwinter:0", want: chaincfg.UpgradeActivation{
			Upgrade: chaincfg.UpgradeOverwinter, Height: 0}},
		{value: "Sapling", wantErr: true},
		{value: "Sapling:1:2", wantErr: true},
		{value: "deadbeef:1", wantErr: true},
		{value: "Sapling:tall", wantErr: true},
		{value: "Sapling:4294967296", wantErr: true},
	}

	for _, test := range tests {
		activations, err := parseNUParams([]string{test.value})
		if test.wantErr {
			require.Error(t, err, test.value)
			continue
		}
		require.NoError(t, err, test.value)
		require.Equal(t, []chaincfg.UpgradeActivation{test.want}, activations)
	}
}

func TestParseConfigNotifyAddresses(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(testArgs(t, "--notifylisten=127.0.0.1:7000",
		"--notifyhashblock=default", "--notifyrawtx=127.0.0.1:7001"))
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.notifyCfg.HashBlock)
	require.Empty(t, cfg.notifyCfg.HashTx)
	require.Equal(t, "127.0.0.1:7001", cfg.notifyCfg.RawTx)
}

func TestParseConfigShowHeight(t *testing.T) {
	t.Parallel()

	cfg, err := parseConfig(testArgs(t))
	require.NoError(t, err)
	require.Equal(t, int32(noHeight), cfg.ShowHeight)

	cfg, err = parseConfig(testArgs(t, "--showheight=653600"))
	require.NoError(t, err)
	require.Equal(t, int32(653600), cfg.ShowHeight)

	_, err = parseConfig(testArgs(t, "--showheight=-2"))
	require.Error(t, err)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	require.NoError(t, parseAndSetDebugLevels("debug"))
	require.Equal(t, btclog.LevelDebug, chcfLog.Level())

	require.NoError(t, parseAndSetDebugLevels("CHCF=trace,NTFY=warn"))
	require.Equal(t, btclog.LevelTrace, chcfLog.Level())
	require.Equal(t, btclog.LevelWarn, ntfyLog.Level())

	require.Error(t, parseAndSetDebugLevels("loud"))
	require.Error(t, parseAndSetDebugLevels("CHCF,"))
	require.Error(t, parseAndSetDebugLevels("XXXX=info"))
	require.Error(t, parseAndSetDebugLevels("CHCF=loud"))

	require.Equal(t, []string{"ARKD", "CHCF", "NTFY"}, supportedSubsystems())
}

func TestShowHeight(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	showHeight(&buf, chaincfg.MainNetParams(), 653600)
	out := buf.String()
	require.Contains(t, out, "epoch:             Blossom\n")
	require.Contains(t, out, "branch id:         2bb40e60\n")
	require.Contains(t, out, "activation height: true\n")
	require.Contains(t, out, "target spacing:    1m15s\n")
	require.Contains(t, out, "next upgrade:      none\n")
	require.Contains(t, out, "founders reward:   disabled\n")

	buf.Reset()
	showHeight(&buf, chaincfg.TestNetParams(), 38000)
	out = buf.String()
	require.Contains(t, out, "epoch:             Sprout\n")
	require.Contains(t, out, "next upgrade:      Overwinter at 207500\n")
	require.Contains(t, out, "checkpoint:        "+
		"001e9a2d2e2892b88e9998cf7b079b41d59dd085423a921fe8386cecc42287b8\n")
}
