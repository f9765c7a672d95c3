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

	"github.com/spf13/cobra"

	"github.com/bgallie/enigma/cryptors/caesar"
	"github.com/bgallie/enigma/cryptors/enigma"
)

const (
	demoCaesarMessage = "The quick brown fox jumped over the lazy dog"
	demoEnigmaMessage = "Hello World"
	demoIntercepted   = "Vxye ajgh D yf? Ptn uluo yjgco L ws nznde czidn. Bsj ccj qdbk qjph wpw ypxvu!"
	demoCrib          = "Hail Shakes!"
)

const demoCribMessage = "Xm xti ca idjmq Ecokta Rkhoxuu! Kdiu gm xex oft uz yjwenv qik parwc hs emrvm sfzu " +
	"qnwfg. Gvgt vz vih rlt ly cnvpym xtq sgfvk jp jatrl irzru oubjo odp uso nsty jm gfp lkwrx " +
	"pliv ojfo rl rylm isn aueuom! Gdwm Qopjmw!"

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the ciphers with built in messages",
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(demo(cmd.OutOrStdout()))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func demo(w io.Writer) error {
	tbl := caesar.NewTables(3)
	secret := caesar.Encode(demoCaesarMessage, tbl)
	fmt.Fprintln(w, "Message:", demoCaesarMessage)
	fmt.Fprintln(w, "Cypher table:", tbl)
	fmt.Fprintln(w, "Encrypted Message:", secret)
	fmt.Fprintln(w, "Decrypted Message:", caesar.Decode(secret, tbl))

	g, err := caesar.GuessShift(secret)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Predicted Shift:", g.Shift)
	fmt.Fprintln(w, "Guessed Message:", g.Plaintext)
	fmt.Fprintln(w)

	// The sample messages came from a machine that steps on every character.
	s := enigma.DefaultSettings()
	s.Key = "ABC"
	s.Plugboard = "AA BB CC DD EE"
	s.StepNonLetters = true
	m, err := enigma.New(s)
	if err != nil {
		return err
	}
	fresh := m.Clone()
	secret = m.Encipher(demoEnigmaMessage)
	fmt.Fprintln(w, "Message:", demoEnigmaMessage)
	fmt.Fprintln(w, "Encoded Message:", secret)
	fmt.Fprintln(w, "Decoded Message:", fresh.Encipher(secret))
	fmt.Fprintln(w)

	s.Key = "SSC"
	m, err = enigma.New(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Intercepted Message:", demoIntercepted)
	fmt.Fprintln(w, "Decoded Message:", m.Encipher(demoIntercepted))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Intercepted Message:", demoCribMessage)
	res, err := enigma.Crack(context.Background(), s, demoCribMessage, demoCrib)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "The rotor key is:", res.Key)
	fmt.Fprintln(w, "Decoded Message:", res.Plaintext)
	fmt.Fprintln(w, "The number of attempts to break the code:", res.Attempts)
	return nil
}
