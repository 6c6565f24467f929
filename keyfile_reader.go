// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// LoadStats summarizes a bulk load.
type LoadStats struct {
	Inserted   int
	Duplicates int
}

// readKeyFile reads one key per line. Blank lines and lines starting with
// '#' are skipped; surrounding whitespace is trimmed.
func readKeyFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	// Pre-allocate with estimated capacity
	var keys []string
	if stat, err := file.Stat(); err == nil {
		// Estimate ~20 bytes per line average
		estimatedLines := int(stat.Size() / 20)
		keys = make([]string, 0, estimatedLines)
	}

	scanner := bufio.NewScanner(file)
	// Increase buffer size for better performance with large key files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// populateSet bulk-inserts keys into the set, optionally drawing a
// progress bar over the terminal while it works.
func populateSet(ks *KeySet, keys []string, showProgress bool) LoadStats {
	var stats LoadStats

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetDescription("🌳 Loading keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Printf("\n✅ Load completed!\n")
			}),
		)
	}

	for _, key := range keys {
		if ks.Add(key) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
		if showProgress && bar != nil {
			bar.Add(1)
		}
	}
	if showProgress && bar != nil {
		bar.Finish()
	}
	return stats
}

// readAndPopulateSet is the common load path for the CLI commands.
func readAndPopulateSet(ks *KeySet, path string, showProgress bool) (LoadStats, error) {
	keys, err := readKeyFile(path)
	if err != nil {
		return LoadStats{}, err
	}
	return populateSet(ks, keys, showProgress), nil
}
