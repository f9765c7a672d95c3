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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgallie/enigma/cryptors/caesar"
)

var (
	useBrute bool
	useRank  bool
)

// caesarCmd groups the Caesar shift cipher commands
var caesarCmd = &cobra.Command{
	Use:   "caesar",
	Short: "Caesar shift cipher",
	Long:  `Encode, decode and break messages written with a Caesar shift cipher.`,
}

var caesarEncodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Shift every letter forward",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), caesar.Encode(readText(args), caesar.NewTables(viper.GetInt("shift"))))
	},
}

var caesarDecodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Shift every letter back",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), caesar.Decode(readText(args), caesar.NewTables(viper.GetInt("shift"))))
	},
}

var caesarBreakCmd = &cobra.Command{
	Use:   "break [text]",
	Short: "Recover the shift of a Caesar ciphertext",
	Long: `Recover the shift of a Caesar ciphertext.  By default the most frequent letter is
taken to stand for 'e', which is only a guess.  --brute prints every shift, and --rank
orders them by the number of common English words found.`,
	Run: func(cmd *cobra.Command, args []string) {
		breakCaesar(cmd.OutOrStdout(), readText(args))
	},
}

func init() {
	rootCmd.AddCommand(caesarCmd)
	caesarCmd.AddCommand(caesarEncodeCmd, caesarDecodeCmd, caesarBreakCmd)
	caesarCmd.PersistentFlags().IntP("shift", "s", 3, "number of letters to shift by")
	cobra.CheckErr(viper.BindPFlag("shift", caesarCmd.PersistentFlags().Lookup("shift")))
	caesarBreakCmd.Flags().BoolVarP(&useBrute, "brute", "b", false, "try every shift")
	caesarBreakCmd.Flags().BoolVarP(&useRank, "rank", "r", false, "try every shift, best guess first")
}

func breakCaesar(w io.Writer, ciphertext string) {
	if !useBrute && !useRank {
		g, err := caesar.GuessShift(ciphertext)
		cobra.CheckErr(err)
		fmt.Fprintf(os.Stderr, "Most frequent letter: %c (%d times)\n", g.Letter, g.Count)
		fmt.Fprintf(w, "Predicted shift: %d\n", g.Shift)
		fmt.Fprintf(w, "Decrypted message: %s\n", g.Plaintext)
		return
	}

	candidates := caesar.BruteForce(ciphertext)
	if useRank {
		candidates = caesar.Rank(candidates, caesar.CommonWords)
	}
	for _, c := range candidates {
		if useRank {
			fmt.Fprintf(w, "Shift %d (%d words):\n  %s\n", c.Shift, c.Score, c.Plaintext)
		} else {
			fmt.Fprintf(w, "Shift %d:\n  %s\n", c.Shift, c.Plaintext)
		}
	}
}
