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
	"io"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		return DefaultConfig()
	}
	return config
}

func startSession() {
	session := NewSession(loadConfigOrDefault())
	if err := runBubbleTeaApp(session); err != nil {
		log.Fatalf("Error running journal UI: %v", err)
	}
}

// showTrees builds a throwaway session and prints both trees and the
// three traversals.
func showTrees(w io.Writer, config *Config, seed bool, fake int, showProgress bool) error {
	session := NewSession(config)

	if seed {
		if err := session.Seed(); err != nil {
			return fmt.Errorf("failed to seed trees: %v", err)
		}
	}

	if fake > 0 {
		var step func()
		if showProgress {
			bar := progressbar.Default(int64(fake), "generating entries")
			step = func() { _ = bar.Add(1) }
		}
		if err := session.FillRandom(fake, step); err != nil {
			return fmt.Errorf("failed to generate entries: %v", err)
		}
	}

	fmt.Fprintf(w, "%sGeneral tree%s (%d nodes, DFS)\n", Green, Reset, session.General.Size())
	fmt.Fprintln(w, PrintGeneral(session.General))
	fmt.Fprintf(w, "%sBinary tree%s (%d nodes)\n", Green, Reset, session.Binary.Size())
	fmt.Fprintln(w, PrintBinary(session.Binary))

	for _, order := range []TraversalOrder{InOrder, PreOrder, PostOrder} {
		report, err := session.Traverse(order)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n\n", report)
	}
	return nil
}

func main() {
	asciiLogo := `
 _                    _                              _
| |_ _ __ ___  ___   (_) ___  _   _ _ __ _ __   __ _| |
| __| '__/ _ \/ _ \  | |/ _ \| | | | '__| '_ \ / _' | |
| |_| | |  __/  __/  | | (_) | |_| | |  | | | | (_| | |
 \__|_|  \___|\___| _/ |\___/ \__,_|_|  |_| |_|\__,_|_|
                   |__/
A journal kept in a general tree and a binary search tree [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Opens the journal UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run opens an interactive session; nothing is kept after it closes`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			startSession()
		},
	}

	var cmdShow = &cobra.Command{
		Use:   "show",
		Short: "Print both trees and their traversals",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Show builds a session from the examples and/or fake entries and prints it`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			InitializeColors()
			seed, _ := cmd.Flags().GetBool("seed")
			fake, _ := cmd.Flags().GetInt("fake")
			quiet, _ := cmd.Flags().GetBool("quiet")
			return showTrees(cmd.OutOrStdout(), loadConfigOrDefault(), seed, fake, !quiet)
		},
	}
	cmdShow.Flags().Bool("seed", true, "load the example entries")
	cmdShow.Flags().Int("fake", 0, "number of fake entries to generate for each tree")
	cmdShow.Flags().BoolP("quiet", "q", false, "hide the progress bar")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			InitializeColors()
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treejournal",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			startSession()
		},
	}
	rootCmd.AddCommand(cmdRun, cmdShow, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
