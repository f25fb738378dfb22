// SPDX-License-Identifier: ISC
// Copyright (c) 2026 psht13
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// one-shot display adapter for the avl package
//
// loads key/value pairs from an optional YAML file and from
// "key=value" arguments, applies deletions and searches, then renders
// the ordered content and optionally the tree structure
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"gopkg.in/yaml.v3"

	"github.com/psht13/avl-tree/avl"
	"github.com/psht13/avl-tree/fault"
	"github.com/psht13/avl-tree/item"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// one entry of a YAML pair file
type pairEntry struct {
	Key   interface{} `yaml:"key"`
	Value interface{} `yaml:"value"`
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "search", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
		{Long: "log-dir", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'l'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--version] [--file=pairs.yaml] [--delete=key]… [--search=key]… [--tree] [--json] [--log-dir=dir] [key=value]…", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	level := "error"
	if verbose {
		level = "info"
	}
	logDir := os.TempDir()
	if len(options["log-dir"]) > 0 {
		logDir = options["log-dir"][0]
	}

	logging := logger.Configuration{
		Directory: logDir,
		File:      "avl-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}

	if err := logger.Initialise(logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()
	log := logger.New("avl-cli")

	// ------------------
	// start of real main
	// ------------------

	tree := avl.New()

	if len(options["file"]) > 0 {
		fileName := options["file"][0]
		pairs, err := loadPairFile(fileName)
		if err != nil {
			exitwithstatus.Message("%s: pair file: %q  error: %s", program, fileName, err)
		}
		log.Infof("loaded %d pairs from: %q", len(pairs), fileName)
		if err := tree.BulkInsert(pairs); err != nil {
			exitwithstatus.Message("%s: bulk insert error: %s", program, err)
		}
	}

	for _, argument := range arguments {
		key, value, ok := strings.Cut(argument, "=")
		if !ok {
			exitwithstatus.Message("%s: invalid argument: %q  expected: key=value", program, argument)
		}
		added, err := tree.Insert(parseItem(key), parseItem(value))
		if err != nil {
			exitwithstatus.Message("%s: insert: %q  error: %s", program, argument, err)
		}
		if added {
			log.Infof("inserted: %q", argument)
		} else {
			log.Infof("overwrote: %q", argument)
		}
	}

	for _, key := range options["delete"] {
		value, removed, err := tree.Delete(parseItem(key))
		if err != nil {
			exitwithstatus.Message("%s: delete: %q  error: %s", program, key, err)
		}
		if removed {
			log.Infof("deleted: %q  value: %v", key, value)
			if !quiet {
				fmt.Printf("deleted: %s → %v\n", key, value)
			}
		} else {
			log.Warnf("delete: %q  not present", key)
			if !quiet {
				fmt.Printf("deleted: %s → not present\n", key)
			}
		}
	}

	for _, key := range options["search"] {
		node, index, err := tree.Search(parseItem(key))
		if err != nil {
			exitwithstatus.Message("%s: search: %q  error: %s", program, key, err)
		}
		if !quiet {
			if nil == node {
				fmt.Printf("search: %s → not present\n", key)
			} else {
				fmt.Printf("search: %s → %v  [%d]\n", key, node.Value(), index)
			}
		}
	}

	log.Infof("tree count: %d", tree.Count())

	if quiet {
		return
	}

	if len(options["json"]) > 0 {
		buffer, err := tree.MarshalJSON()
		if err != nil {
			exitwithstatus.Message("%s: marshal error: %s", program, err)
		}
		fmt.Printf("%s\n", buffer)
	} else {
		for _, pair := range tree.Dump() {
			fmt.Printf("%v → %v\n", pair.Key, pair.Value)
		}
	}

	if len(options["tree"]) > 0 {
		depth := tree.Print(verbose)
		fmt.Printf("depth: %d  count: %d\n", depth, tree.Count())
	}
}

// read a YAML list of {key:, value:} entries
func loadPairFile(fileName string) ([]avl.Pair, error) {
	buffer, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	entries := []pairEntry{}
	if err := yaml.Unmarshal(buffer, &entries); err != nil {
		return nil, fault.ErrPairFileFormat
	}

	pairs := make([]avl.Pair, len(entries))
	for i, entry := range entries {
		key, err := toItem(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := toItem(entry.Value)
		if err != nil {
			return nil, err
		}
		pairs[i] = avl.Pair{Key: key, Value: value}
	}
	return pairs, nil
}

// map a decoded YAML scalar onto the item union
func toItem(x interface{}) (item.Item, error) {
	switch v := x.(type) {
	case int:
		return item.Integer(v), nil
	case int64:
		return item.Integer(v), nil
	case string:
		return item.Text(v), nil
	default:
		return nil, fault.ErrUnsupportedItemType
	}
}

// integers become Integer items, everything else is Text
func parseItem(s string) item.Item {
	if n, err := strconv.ParseInt(s, 10, 64); nil == err {
		return item.Integer(n)
	}
	return item.Text(s)
}
