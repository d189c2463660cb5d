// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2019 The arnak developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arnak/arnakd/chaincfg"
	"github.com/arnak/arnakd/notify"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "arnakd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "arnakd.log"
	defaultNotifyListen   = "127.0.0.1:8230"

	// notifyDefaultAddr selects the --notifylisten address for a topic.
	notifyDefaultAddr = "default"

	// noHeight marks an unset --showheight.
	noHeight = -1
)

var (
	defaultHomeDir    = btcutil.AppDataDir("arnakd", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = filepath.Join(defaultHomeDir, defaultDataDirname)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for arnakd.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	TestNet        bool `long:"testnet" description:"Use the test network"`
	RegressionTest bool `long:"regtest" description:"Use the regression test network"`

	RegtestProtectCoinbase   bool     `long:"regtestprotectcoinbase" description:"Require coinbase outputs to be spent to a shielded address (regtest only)"`
	DeveloperSetPoolSizeZero bool     `long:"developersetpoolsizezero" description:"Enable the shielded value pool turnstile (regtest only)"`
	NUParams                 []string `long:"nuparams" description:"Override the activation height of a network upgrade as <branch id or name>:<height> (regtest only)"`

	NotifyListen    string `long:"notifylisten" description:"Address for notification topics configured as 'default'"`
	NotifyHashBlock string `long:"notifyhashblock" description:"Publish new tip hashes on this address ('default' uses --notifylisten)"`
	NotifyHashTx    string `long:"notifyhashtx" description:"Publish transaction hashes on this address ('default' uses --notifylisten)"`
	NotifyRawTx     string `long:"notifyrawtx" description:"Publish raw transactions on this address ('default' uses --notifylisten)"`

	DumpParams bool  `long:"dumpparams" description:"Print the parameters of the selected network and exit"`
	ShowHeight int32 `long:"showheight" description:"Print the consensus rules in effect at the given height and exit"`

	network    chaincfg.NetworkID
	selectOpts chaincfg.SelectOptions
	notifyCfg  notify.Config
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// newConfigParser returns a new command line flags parser.
func newConfigParser(cfg *config, options flags.Options) *flags.Parser {
	return flags.NewParser(cfg, options)
}

// resolveNetwork returns the network selected by the network flags.  At most
// one network may be selected; the main network is the default.
func (cfg *config) resolveNetwork() (chaincfg.NetworkID, error) {
	network := chaincfg.MainNet
	numNets := 0
	if cfg.TestNet {
		numNets++
		network = chaincfg.TestNet
	}
	if cfg.RegressionTest {
		numNets++
		network = chaincfg.RegTest
	}
	if numNets > 1 {
		return 0, errors.New("the testnet and regtest params can't be " +
			"used together -- choose one of the two")
	}
	return network, nil
}

// parseNUParams parses --nuparams values of the form <upgrade>:<height>.
func parseNUParams(values []string) ([]chaincfg.UpgradeActivation, error) {
	activations := make([]chaincfg.UpgradeActivation, 0, len(values))
	for _, value := range values {
		parts := strings.Split(value, ":")
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid network upgrade %q -- "+
				"expected <branch id>:<height>", value)
		}
		upgrade, err := chaincfg.ParseUpgrade(parts[0])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid network upgrade %q", value)
		}
		height, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid activation height %q", value)
		}
		activations = append(activations, chaincfg.UpgradeActivation{
			Upgrade: upgrade,
			Height:  int32(height),
		})
	}
	return activations, nil
}

// notifyAddr resolves a notification topic address.
func (cfg *config) notifyAddr(addr string) string {
	if addr == notifyDefaultAddr || addr == "*" {
		return cfg.NotifyListen
	}
	return addr
}

// parseConfig parses args on top of the default configuration and the
// configuration file, and validates the result.  It has no side effects
// beyond reading the configuration file.
func parseConfig(args []string) (*config, error) {
	cfg := config{
		ConfigFile:   defaultConfigFile,
		DataDir:      defaultDataDir,
		LogDir:       defaultLogDir,
		DebugLevel:   defaultLogLevel,
		NotifyListen: defaultNotifyListen,
		ShowHeight:   noHeight,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error
	// can be ignored here since they will be caught by the final parse
	// below.
	preCfg := cfg
	preParser := newConfigParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, err
		}
	}

	// Load additional config from file.  A missing file is not an error.
	parser := newConfigParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(preCfg.ConfigFile))
	if err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, errors.Wrap(err, "error parsing config file")
		}
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}

	cfg.network, err = cfg.resolveNetwork()
	if err != nil {
		return nil, err
	}

	activations, err := parseNUParams(cfg.NUParams)
	if err != nil {
		return nil, err
	}
	cfg.selectOpts = chaincfg.SelectOptions{
		RegtestProtectCoinbase:   cfg.RegtestProtectCoinbase,
		DeveloperSetPoolSizeZero: cfg.DeveloperSetPoolSizeZero,
		UpgradeActivations:       activations,
	}
	if cfg.network != chaincfg.RegTest {
		switch {
		case cfg.RegtestProtectCoinbase:
			return nil, errors.New("--regtestprotectcoinbase requires --regtest")
		case cfg.DeveloperSetPoolSizeZero:
			return nil, errors.New("--developersetpoolsizezero requires --regtest")
		case len(activations) > 0:
			return nil, errors.New("--nuparams requires --regtest")
		}
	}

	cfg.notifyCfg = notify.Config{
		HashBlock: cfg.notifyAddr(cfg.NotifyHashBlock),
		HashTx:    cfg.notifyAddr(cfg.NotifyHashTx),
		RawTx:     cfg.notifyAddr(cfg.NotifyRawTx),
	}

	if cfg.ShowHeight < noHeight {
		return nil, errors.Errorf("invalid --showheight %d", cfg.ShowHeight)
	}

	// Namespace the data and log directories per network.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), cfg.network.String())
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), cfg.network.String())

	return &cfg, nil
}

// loadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// It also initializes logging.
func loadConfig() (*config, error) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		// Show the usage and exit when help was requested.
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		err = errors.Wrap(err, "failed to create data directory")
		fmt.Fprintln(os.Stderr, err)
		return nil, err
	}

	// Initialize log rotation.  After log rotation has been initialized,
	// the logger variables may be used.
	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, err
	}

	return cfg, nil
}
