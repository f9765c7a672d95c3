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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"

	"github.com/bgallie/enigma/cryptors"
)

const (
	armorHeader = "+ENIGMA"
	pemType     = "ENIGMA Enciphered Message"
)

var (
	useASCII85  bool
	usePem      bool
	compression bool
)

// encipherCmd represents the encipher command
var encipherCmd = &cobra.Command{
	Use:   "encipher [key]",
	Short: "Encipher text with the rotor machine",
	Long: `Encipher text with the rotor machine set to the given key, one letter per rotor.
Enciphering is its own inverse, so plain text output can be deciphered by enciphering
it again with the same settings.  Armored or compressed output has to be read back
with "decipher".`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encipher(args)
	},
}

func init() {
	rootCmd.AddCommand(encipherCmd)
	encipherCmd.Flags().BoolVarP(&useASCII85, "useASCII85", "a", false, "use ASCII85 encoding")
	encipherCmd.Flags().BoolVarP(&usePem, "usePem", "p", false, "use PEM encoding.")
	encipherCmd.Flags().BoolVarP(&compression, "compress", "c", false, "compress the ciphertext using flate")
	encipherCmd.MarkFlagsMutuallyExclusive("useASCII85", "usePem")
}

func encipher(args []string) {
	machine := initMachine(args)
	fin, fout := getInputAndOutputFiles(true)
	defer fout.Close()

	encIn := cryptors.CipherHelper(fin, machine, true)
	if compression {
		encIn = flate.ToFlate(encIn)
	}

	var err error
	if usePem {
		var blck pem.Block
		blck.Type = pemType
		blck.Headers = make(map[string]string)
		s := machineSettings()
		blck.Headers["Reflector"] = s.Reflector
		blck.Headers["Rotors"] = strings.Join(s.Rotors, ",")
		blck.Headers["Compression"] = fmt.Sprintf("%v", compression)
		if len(inputFileName) > 0 && inputFileName != "-" {
			blck.Headers["FileName"] = inputFileName
		}
		_, err = io.Copy(fout, pem.ToPem(bufio.NewReader(encIn), blck))
	} else if useASCII85 {
		_, err = fmt.Fprintf(fout, "%s|%v\n", armorHeader, compression)
		checkError(err)
		_, err = io.Copy(fout, lines.SplitToLines(ascii85.ToASCII85(encIn)))
	} else {
		_, err = io.Copy(fout, encIn)
	}
	checkError(err)
}
