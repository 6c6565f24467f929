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
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	asciiLogo := `
██╗  ██╗███████╗██╗   ██╗████████╗██████╗ ███████╗███████╗
██║ ██╔╝██╔════╝╚██╗ ██╔╝╚══██╔══╝██╔══██╗██╔════╝██╔════╝
█████╔╝ █████╗   ╚████╔╝    ██║   ██████╔╝█████╗  █████╗
██╔═██╗ ██╔══╝    ╚██╔╝     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██╗███████╗   ██║      ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
A persistent sorted key set with snapshots & range search [Version: %s%s%s]

Copyright @ Naren Yellavula (Please give us a star ⭐ here: https://github.com/cybrota/keytree)

`

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}
	InitializeColors(config.UI.Theme)

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	// startSet loads the optional key file argument into a fresh set.
	startSet := func(args []string) *KeySet {
		ks := NewKeySet(config)
		if len(args) > 0 {
			stats, err := readAndPopulateSet(ks, args[0], config.Load.ShowProgress)
			if err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			fmt.Printf("Loaded %d keys (%d duplicates) from %s\n", stats.Inserted, stats.Duplicates, args[0])
		}
		return ks
	}

	var cmdRun = &cobra.Command{
		Use:   "run [keyfile]",
		Short: "Launches keytree UI for interactive exploration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run command opens the Keytree UI over an optional key file`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ks := startSet(args)
			if err := runBubbleTeaApp(ks, config); err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load <keyfile>",
		Short: "Bulk load a key file and print tree statistics",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads one key per line and reports what the tree looks like after`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ks := startSet(args)
			fmt.Printf("Keys:   %s%d%s\n", Green, ks.Len(), Reset)
			fmt.Printf("Height: %s%d%s\n", Green, ks.Height(), Reset)
		},
	}

	var cmdQuery = &cobra.Command{
		Use:   "query <keyfile>",
		Short: "One-shot membership and range queries against a key file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Query loads a key file, answers --has and --range, and exits`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ks := NewKeySet(config)
			if _, err := readAndPopulateSet(ks, args[0], false); err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}

			if key := cmd.Flag("has").Value.String(); key != "" {
				if ks.Has(key) {
					fmt.Printf("%s✔ %s%s\n", Green, key, Reset)
				} else {
					fmt.Printf("%s✘ %s%s\n", Error, key, Reset)
				}
			}

			if window := cmd.Flag("range").Value.String(); window != "" {
				bounds := strings.SplitN(window, ",", 2)
				if len(bounds) != 2 {
					log.Fatalf("--range wants two comma-separated bounds, got %q", window)
				}
				res := ks.Range(strings.TrimSpace(bounds[0]), strings.TrimSpace(bounds[1]))
				fmt.Println(strings.Join(res, "\n"))
			}
		},
	}
	cmdQuery.Flags().String("has", "", "key to test for membership")
	cmdQuery.Flags().String("range", "", "inclusive range query, as start,end")

	var cmdShow = &cobra.Command{
		Use:   "show <keyfile>",
		Short: "Render the tree structure of a key file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show draws the balanced tree as ASCII, with height and size per node`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ks := NewKeySet(config)
			if _, err := readAndPopulateSet(ks, args[0], false); err != nil {
				log.Fatalf("Error loading keys: %v", err)
			}
			fmt.Print(renderTreeStructure(ks.Current()))
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Keytree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the keytree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show or create the Keytree configuration",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Keytree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "keytree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			ks := startSet(args)
			if err := runBubbleTeaApp(ks, config); err != nil {
				log.Fatalf("Error running UI: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdRun, cmdLoad, cmdQuery, cmdShow, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}
