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
	"os"
	"strings"
	"sync"

	"github.com/bgallie/filters/ascii85"
	"github.com/bgallie/filters/flate"
	"github.com/bgallie/filters/lines"
	"github.com/bgallie/filters/pem"
	"github.com/spf13/cobra"

	"github.com/bgallie/enigma/cryptors"
)

var wg sync.WaitGroup

// decipherCmd represents the decipher command
var decipherCmd = &cobra.Command{
	Use:   "decipher [key]",
	Short: "Decipher text written by encipher.",
	Long: `Decipher text written by encipher.  PEM and ASCII85 armor is recognised
and removed before the text goes through the rotor machine.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		decipher(args)
	},
}

func init() {
	rootCmd.AddCommand(decipherCmd)
	decipherCmd.Flags().BoolVarP(&compression, "compress", "c", false, "the unarmored input is flate compressed")
}

// fromBinaryHelper provides the means to inject the unarmored input
// into the pipe stream used by the decipher() function.  The data can
// be read using the returned PipeReader.
func fromBinaryHelper(rdr io.Reader) *io.PipeReader {
	rRdr, rWrtr := io.Pipe()
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := io.Copy(rWrtr, rdr)
		rWrtr.CloseWithError(err)
	}()
	return rRdr
}

func decipher(args []string) {
	machine := initMachine(args)
	fin, fout := getInputAndOutputFiles(false)
	defer fout.Close()

	var aRdr *io.PipeReader
	bRdr := bufio.NewReader(fin)
	b, err := bRdr.Peek(len(armorHeader))
	checkError(err)
	if strings.HasPrefix(string(b), "-----") {
		var blck pem.Block
		aRdr, blck = pem.FromPem(bRdr)
		if blck.Type != pemType {
			fmt.Fprintf(os.Stderr, "Warning: unexpected PEM block type %q\n", blck.Type)
		}
		if cmpr, ok := blck.Headers["Compression"]; ok {
			compression = cmpr == "true"
		}
		if r, ok := blck.Headers["Rotors"]; ok && r != strings.Join(machineSettings().Rotors, ",") {
			fmt.Fprintf(os.Stderr, "Warning: message was enciphered with rotors %s\n", r)
		}
	} else if string(b) == armorHeader {
		line, err := bRdr.ReadString('\n')
		checkError(err)
		fields := strings.Split(strings.TrimSpace(line), "|")
		if len(fields) == 2 {
			compression = fields[1] == "true"
		}
		aRdr = ascii85.FromASCII85(lines.CombineLines(bRdr))
	} else {
		aRdr = fromBinaryHelper(bRdr)
	}

	if compression {
		aRdr = flate.FromFlate(aRdr)
	}
	_, err = io.Copy(fout, cryptors.CipherHelper(aRdr, machine, false))
	checkError(err)
	wg.Wait()
}
