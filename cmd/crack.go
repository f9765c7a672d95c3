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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgallie/enigma/cryptors/enigma"
)

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:   "crack [ciphertext]",
	Short: "Find the rotor key of a message from a known ending",
	Long: `Find the rotor key of a message by trying every key until the deciphered text ends
with the crib.  The rotors, reflector, ring settings and plugboard must be known.`,
	Run: func(cmd *cobra.Command, args []string) {
		crack(cmd.OutOrStdout(), readText(args))
	},
}

func init() {
	rootCmd.AddCommand(crackCmd)
	crackCmd.Flags().String("crib", "", "known plaintext the message ends with")
	crackCmd.Flags().Int("workers", runtime.NumCPU(), "number of keys tried at once")
	cobra.CheckErr(viper.BindPFlag("crib", crackCmd.Flags().Lookup("crib")))
	cobra.CheckErr(viper.BindPFlag("workers", crackCmd.Flags().Lookup("workers")))
}

func crack(w io.Writer, ciphertext string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := enigma.CrackParallel(ctx, machineSettings(), ciphertext, viper.GetString("crib"), viper.GetInt("workers"))
	cobra.CheckErr(err)

	fmt.Fprintln(w, "The rotor key is:", res.Key)
	fmt.Fprintln(w, "Decoded message:", res.Plaintext)
	fmt.Fprintln(w, "The number of attempts to break the code:", res.Attempts)
	fmt.Fprintf(os.Stderr, "Search took %v\n", time.Since(start).Round(time.Millisecond))
}
