/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/bgallie/enigma/cryptors/enigma"
)

var (
	cfgFile        string
	wiringsFile    string
	inputFileName  string
	outputFileName string
	verbose        bool
	GitCommit      string = "not set"
	GitBranch      string = "not set"
	GitState       string = "not set"
	GitSummary     string = "not set"
	BuildDate      string = "not set"
	Version        string = "dev"
)

const (
	enigmaSuffix = ".enigma"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "enigma",
	Short:   "Classical rotor and shift ciphers",
	Long:    `enigma enciphers text with an Enigma style rotor machine or a Caesar shift, and breaks both by brute force.`,
	Version: Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.enigma.yaml)")
	pf.StringVarP(&wiringsFile, "wirings", "w", "", "YAML file with additional rotor and reflector wirings.")
	pf.StringVarP(&inputFileName, "inputFile", "i", "-", "Name of the file to read.")
	pf.StringVarP(&outputFileName, "outputFile", "o", "", "Name of the file to write.")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	pf.String("reflector", "A", "reflector to use")
	pf.StringSlice("rotors", []string{"I", "II", "III"}, "rotors to use, fast rotor first")
	pf.String("ring", "", "ring settings, one letter per rotor (default all A)")
	pf.String("plugboard", "", `plugboard pairs, e.g. "AB CD EF"`)
	pf.Bool("stepNonLetters", false, "advance the rotors on spaces and punctuation too")
	for _, name := range []string{"reflector", "rotors", "ring", "plugboard", "stepNonLetters"} {
		cobra.CheckErr(viper.BindPFlag(name, pf.Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".enigma" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".enigma")
	}

	viper.SetEnvPrefix("ENIGMA")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// machineSettings collects the machine description from flags, the config
// file and the environment.  The key is left empty.
func machineSettings() enigma.Settings {
	s := enigma.Settings{
		Reflector: viper.GetString("reflector"),
		Rotors:    viper.GetStringSlice("rotors"),
		Ring:      viper.GetString("ring"),
		Plugboard: viper.GetString("plugboard"),

		StepNonLetters: viper.GetBool("stepNonLetters"),
	}

	if wiringsFile == "" {
		wiringsFile = viper.GetString("wirings")
	}
	if wiringsFile != "" {
		f, err := os.Open(wiringsFile)
		cobra.CheckErr(err)
		defer f.Close()
		cat := enigma.Standard.Clone()
		cobra.CheckErr(cat.LoadWirings(f))
		s.Catalogue = cat
	}

	return s
}

func initMachine(args []string) *enigma.Machine {
	// Obtain the rotor key from either:
	// 1. Arguments from the entered command line
	// 2. The 'ENIGMA_KEY' environment variable or the config file
	// 3. User input from the terminal
	s := machineSettings()
	if len(args) > 0 {
		s.Key = strings.Join(args, "")
	} else if viper.IsSet("key") {
		s.Key = viper.GetString("key")
	} else if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Enter the rotor key: ")
		byteKey, err := term.ReadPassword(int(os.Stdin.Fd()))
		cobra.CheckErr(err)
		fmt.Fprintln(os.Stderr, "")
		s.Key = string(byteKey)
	}

	if len(s.Key) == 0 {
		cobra.CheckErr("You must supply a rotor key.")
	}

	m, err := enigma.New(s)
	cobra.CheckErr(err)
	return m
}

func getInputFile() *os.File {
	if len(inputFileName) > 0 && inputFileName != "-" {
		fin, err := os.Open(inputFileName)
		cobra.CheckErr(err)
		return fin
	}
	return os.Stdin
}

// getInputAndOutputFiles will return the input and output files to use while
// enciphering/deciphering data.  If input and/or output files names were given,
// then those files will be opened.  Otherwise stdin and stdout are used.
func getInputAndOutputFiles(encode bool) (*os.File, *os.File) {
	fin := getInputFile()
	var fout *os.File
	var err error

	if len(outputFileName) > 0 {
		if outputFileName == "-" {
			fout = os.Stdout
		} else {
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		}
	} else if inputFileName == "-" || len(inputFileName) == 0 {
		fout = os.Stdout
	} else if encode {
		outputFileName = inputFileName + enigmaSuffix
		fout, err = os.Create(outputFileName)
		cobra.CheckErr(err)
	} else {
		if strings.HasSuffix(inputFileName, enigmaSuffix) {
			outputFileName = strings.TrimSuffix(inputFileName, enigmaSuffix)
			fout, err = os.Create(outputFileName)
			cobra.CheckErr(err)
		} else {
			fout = os.Stdout
		}
	}
	return fin, fout
}

// readText returns args joined by spaces, or the whole input file when no
// args were given.
func readText(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	fin := getInputFile()
	if fin != os.Stdin {
		defer fin.Close()
	}
	b, err := io.ReadAll(fin)
	cobra.CheckErr(err)
	return strings.TrimRight(string(b), "\r\n")
}

// checkError checks for error that are not io.EOF and io.ErrUnexpectedEOF and exits.
func checkError(e error) {
	if e != io.EOF && e != io.ErrUnexpectedEOF {
		cobra.CheckErr(e)
	}
}
